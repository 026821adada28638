package user

type User struct {
	Id          int
	Uid         string
	DisplayName string
	Settings    Settings
}

type Settings struct {
	// GoogleCalendarId selects the calendar consulted by the scheduler.
	// Empty means the provider's primary calendar.
	GoogleCalendarId string
}
