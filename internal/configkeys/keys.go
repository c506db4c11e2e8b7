package configkeys

// Keys are dotted viper paths. With EnvPrefix they map to environment
// variables such as BOUNDED_LOG_VERBOSE.
const (
	delimiter = "."

	EnvPrefix = "BOUNDED"

	ConfigLogPrefix  = "log"
	ConfigLogVerbose = ConfigLogPrefix + delimiter + "verbose"

	ConfigDispatchPrefix = "dispatch"
	ConfigDispatchSlots  = ConfigDispatchPrefix + delimiter + "slots"
)
