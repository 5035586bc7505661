package calima

import "fmt"

// ConfigurationError reports a component constructed against a database
// that does not support the requested operation.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "calima: " + e.Reason
}

// UnknownFeatureError reports a feature override whose name is not
// defined in the database schema.
type UnknownFeatureError struct {
	Feature string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("calima: unknown feature %q", e.Feature)
}

// InvalidFeatureValueError reports a feature override whose value lies
// outside the schema's domain for that feature.
type InvalidFeatureValueError struct {
	Feature string
	Value   string
}

func (e *InvalidFeatureValueError) Error() string {
	return fmt.Sprintf("calima: invalid value %q for feature %q", e.Value, e.Feature)
}
