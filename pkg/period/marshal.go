package period

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical ISO-8601
// form. encoding/json picks this up automatically, so periods serialize as
// strings such as "P1Y2M3D".
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML emits the canonical string form. yaml.v3 honors TextMarshaler
// on encode but not TextUnmarshaler on decode, so both halves are implemented
// explicitly to keep round trips symmetric.
func (p Period) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML decodes a YAML scalar through Parse.
func (p *Period) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("period must be a string: %w", err)
	}
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
