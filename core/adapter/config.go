package adapter

// Config holds configuration for the section adapter.
type Config struct {
	// StrictThread panics when the adapter is used from a goroutine other than its owner.
	StrictThread bool `mapstructure:"strict_thread" default:"true"`
	// AnimateInvisible keeps batch updates when the widget is not visible instead of
	// falling back to a full reload.
	AnimateInvisible bool `mapstructure:"animate_invisible" default:"false"`
	// CalculationWidth is the content width used to measure views when the widget has no
	// bounds yet.
	CalculationWidth float64 `mapstructure:"calculation_width" default:"375"`
}
