package config

type DriverConfig struct {
	Redis    Redis
	RabbitMQ RabbitMQ
	SMTP     SMTP
	Logger   Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type SMTP struct {
	Host        string
	Port        int
	Username    string
	Password    string
	EmailSender string
}

type Logger struct {
	Driver              string
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App          App
	Calendar     Calendar
	Sheet        Sheet
	Verification Verification
	Booking      Booking
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	NotificationQueue         string
	MaxRequests               int
	ShutdownTimeout           int
	MutationRequestsPerMinute int
}

type Calendar struct {
	BaseUrl string
	ApiKey  string
	// MaxRequestsPerSecond throttles outbound calls so availability bursts
	// cannot hammer the external API.
	MaxRequestsPerSecond int
}

type Sheet struct {
	BaseUrl string
	ApiKey  string
}

type Verification struct {
	BaseUrl string
	Secret  string
}

type Booking struct {
	// SlotStepMinutes is the grid the availability walk snaps to.
	SlotStepMinutes int
	// ShiftStepMinutes is the decrement used when trying to shift a booking
	// earlier during an extension check.
	ShiftStepMinutes int
	// AlternativeSlotLimit caps the alternatives returned on no_availability.
	AlternativeSlotLimit int
	// AlternativeWindowDays is how many days ahead to look for alternatives.
	AlternativeWindowDays int
	// SearchWindowDays bounds the bulk event export used by booking search.
	SearchWindowDays int
}
