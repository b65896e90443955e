package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	SalonAPI     AppSalonAPI     `mapstructure:"salon_api"`
	Booking      AppBooking      `mapstructure:"booking"`
	Theme        AppTheme        `mapstructure:"theme"`
	Cache        AppCache        `mapstructure:"cache"`
	Notification AppNotification `mapstructure:"notification"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RedirectDelayInSeconds     int    `mapstructure:"redirect_delay_in_seconds"`
}

type AppSalonAPI struct {
	BaseUrl              string `mapstructure:"base_url"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
	// MaxRequestsPerSecond of 0 disables outbound throttling.
	MaxRequestsPerSecond int `mapstructure:"max_requests_per_second"`
	ThrottleBurst        int `mapstructure:"throttle_burst"`
}

type AppBooking struct {
	DefaultDurationInMinutes  int   `mapstructure:"default_duration_in_minutes"`
	AllowedDurationsInMinutes []int `mapstructure:"allowed_durations_in_minutes"`
}

type AppTheme struct {
	Default    string `mapstructure:"default"`
	CookieName string `mapstructure:"cookie_name"`
}

type AppCache struct {
	StylistListTTLInSeconds int `mapstructure:"stylist_list_ttl_in_seconds"`
}

type AppNotification struct {
	Enabled bool   `mapstructure:"enabled"`
	Queue   string `mapstructure:"queue"`
}
