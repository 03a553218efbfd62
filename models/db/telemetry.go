package dbmodels

type TelemetrySample struct {
	BaseModel
	SessionID string `gorm:"type:varchar(36);index:idx_tel_session_driver_lap"`
	Session   *SessionRecord
	Driver    string `gorm:"type:varchar(10);index:idx_tel_session_driver_lap"`
	LapNumber int    `gorm:"index:idx_tel_session_driver_lap"`
	Seq       int    // sample order within the lap after downsampling
	X         float64
	Y         float64
	Speed     float64 // kph
	Gear      int
	Throttle  float64 // percent
	Brake     float64 // percent, provider bool scaled to 0/100
	Distance  float64 // meters from lap start
}
