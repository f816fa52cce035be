package config

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type Ledger struct {
	// MaxDecimals caps the fractional digits accepted for amounts; 0 disables the cap.
	MaxDecimals    int `envconfig:"MAX_DECIMALS" default:"2"`
	MaxOwnerLength int `envconfig:"MAX_OWNER_LENGTH" default:"64"`
}

type CLI struct {
	Prompt string `envconfig:"PROMPT" default:"ledger> "`
	Color  bool   `envconfig:"COLOR" default:"true"`
}

type App struct {
	Env    string  `envconfig:"APP_ENV" default:"development"`
	Log    *Log    `envconfig:"LOG"`
	Ledger *Ledger `envconfig:"LEDGER"`
	CLI    *CLI    `envconfig:"CLI"`
}
