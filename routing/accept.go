package routing

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/shgat/nodearena"
)

// AcceptedCall is the normalized execution request Accept yields: the
// resolved capability id and its arguments merged against
// ParametersSchema defaults and re-encoded as JSON.
type AcceptedCall struct {
	CapabilityID string
	Args         []byte
}

// paramSchema is the minimal recursive JSON-schema subset ParametersSchema
// documents use: a type tag, a default value, nested object properties,
// and a required-key list. There is no general-purpose validator in play
// here (spec §4.7's "(NEW)" accept note) — just enough structure to merge
// caller args with schema defaults and catch a missing-required-key or
// wrong-typed value before the call reaches execution.
type paramSchema struct {
	Type       string                 `json:"type,omitempty"`
	Default    json.RawMessage        `json:"default,omitempty"`
	Properties map[string]paramSchema `json:"properties,omitempty"`
	Required   []string               `json:"required,omitempty"`
}

// Accept resolves callName to a capability id, merges args with the
// capability's ParametersSchema defaults (when one is set), and yields a
// normalized execution request (spec §4.7 item 3: "accept(callName,
// args) resolves callName to a capability id, merges args with the
// capability's parameter-schema defaults, and yields a normalized
// execution request"). callName is the capability's own registered id —
// this engine has no separate call-name alias table, so resolution is a
// direct capability lookup. A nil or empty args is treated as `{}`.
// Always available, including while the engine is quarantined: Accept
// only reads and validates, it never mutates engine state.
func (e *Engine) Accept(callName string, args []byte) (AcceptedCall, error) {
	node, err := e.fs.GetNode(callName)
	if err != nil {
		if errors.Is(err, nodearena.ErrNotFound) {
			return AcceptedCall{}, fmt.Errorf("routing.Accept: %w", ErrUnknownCapability)
		}

		return AcceptedCall{}, fmt.Errorf("routing.Accept: %w", err)
	}
	if node.Kind != nodearena.KindCapability {
		return AcceptedCall{}, fmt.Errorf("routing.Accept: %w", ErrUnknownCapability)
	}

	merged := map[string]interface{}{}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &merged); err != nil {
			return AcceptedCall{}, fmt.Errorf("routing.Accept: decoding args: %w", err)
		}
	}

	if len(node.ParametersSchema) > 0 {
		var schema paramSchema
		if err := json.Unmarshal(node.ParametersSchema, &schema); err != nil {
			return AcceptedCall{}, fmt.Errorf("routing.Accept: decoding parameter schema: %w", err)
		}
		if err := mergeSchemaDefaults(merged, schema); err != nil {
			return AcceptedCall{}, fmt.Errorf("routing.Accept: %w", err)
		}
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return AcceptedCall{}, fmt.Errorf("routing.Accept: encoding merged args: %w", err)
	}

	e.logger.Debug().Str("capability_id", node.ID).Msg("routing: accepted call")

	return AcceptedCall{CapabilityID: node.ID, Args: out}, nil
}

// mergeSchemaDefaults fills in schema.Properties defaults for any key
// args is missing, recurses into nested object properties, then checks
// every present key's JSON type against its schema declaration.
// Caller-supplied values always win over a schema default.
func mergeSchemaDefaults(args map[string]interface{}, schema paramSchema) error {
	for name, prop := range schema.Properties {
		if _, ok := args[name]; ok {
			continue
		}
		if len(prop.Default) == 0 {
			continue
		}

		var def interface{}
		if err := json.Unmarshal(prop.Default, &def); err != nil {
			return fmt.Errorf("decoding default for %q: %w", name, err)
		}
		args[name] = def
	}

	for _, key := range schema.Required {
		if _, ok := args[key]; !ok {
			return fmt.Errorf("missing required argument %q: %w", key, ErrAcceptMissingArg)
		}
	}

	for name, prop := range schema.Properties {
		val, ok := args[name]
		if !ok {
			continue
		}
		if err := checkSchemaType(name, val, prop.Type); err != nil {
			return err
		}

		if prop.Type == "object" && len(prop.Properties) > 0 {
			nested, ok := val.(map[string]interface{})
			if !ok {
				return fmt.Errorf("argument %q: %w", name, ErrAcceptTypeMismatch)
			}
			if err := mergeSchemaDefaults(nested, prop); err != nil {
				return err
			}
			args[name] = nested
		}
	}

	return nil
}

// checkSchemaType reports whether val's decoded JSON type matches want,
// a no-op when want is empty (untyped schema field). JSON numbers always
// decode as float64, so an "integer"-typed field accepts any number.
func checkSchemaType(name string, val interface{}, want string) error {
	if want == "" {
		return nil
	}

	var got string
	switch val.(type) {
	case nil:
		got = "null"
	case bool:
		got = "boolean"
	case float64:
		got = "number"
	case string:
		got = "string"
	case []interface{}:
		got = "array"
	case map[string]interface{}:
		got = "object"
	default:
		got = "unknown"
	}

	if got == "number" && want == "integer" {
		return nil
	}
	if got != want {
		return fmt.Errorf("argument %q: expected type %q, got %q: %w", name, want, got, ErrAcceptTypeMismatch)
	}

	return nil
}
