package catalogprovider

import (
	"f1viz-backend/db"
	store "f1viz-backend/lib/catalog/store"
	initchecker "f1viz-backend/lib/utils/init-checker"
	"f1viz-backend/models"
	catalogapimodels "f1viz-backend/models/api/catalog"
)

type Provider interface {
	Seasons() (catalogapimodels.SeasonList, error)
	Events(season int) (catalogapimodels.EventList, error)
	Sessions(season int, event string) (catalogapimodels.SessionList, error)
	Drivers(season int, event string, session models.SessionKind) (catalogapimodels.DriverList, error)
	Laps(season int, event string, session models.SessionKind, driver string) (catalogapimodels.LapList, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Seasons() (catalogapimodels.SeasonList, error) {
	seasons, err := i.store.Seasons()
	if err != nil {
		return catalogapimodels.SeasonList{}, err
	}
	return catalogapimodels.SeasonList{Seasons: seasons}, nil
}

func (i impl) Events(season int) (catalogapimodels.EventList, error) {
	events, err := i.store.Events(season)
	if err != nil {
		return catalogapimodels.EventList{}, err
	}
	return catalogapimodels.EventList{
		Season: season,
		Events: events,
	}, nil
}

func (i impl) Sessions(season int, event string) (catalogapimodels.SessionList, error) {
	sessions, err := i.store.Sessions(season, event)
	if err != nil {
		return catalogapimodels.SessionList{}, err
	}
	return catalogapimodels.SessionList{
		Season:   season,
		Event:    event,
		Sessions: sessions,
	}, nil
}

func (i impl) Drivers(season int, event string, session models.SessionKind) (catalogapimodels.DriverList, error) {
	drivers, err := i.store.Drivers(season, event, session)
	if err != nil {
		return catalogapimodels.DriverList{}, err
	}
	return catalogapimodels.DriverList{
		Season:  season,
		Event:   event,
		Session: session,
		Drivers: drivers,
	}, nil
}

func (i impl) Laps(season int, event string, session models.SessionKind, driver string) (catalogapimodels.LapList, error) {
	result := catalogapimodels.LapList{
		Season:  season,
		Event:   event,
		Session: session,
		Driver:  driver,
		Laps:    []int{},
	}
	entry, err := i.store.GetEntry(season, event, session, driver)
	if err != nil {
		return result, err
	}
	if entry == nil {
		return result, nil
	}
	for _, lap := range entry.Laps {
		result.Laps = append(result.Laps, int(lap))
	}
	return result, nil
}
