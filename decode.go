package envdsl

import (
	"errors"

	"github.com/go-viper/mapstructure/v2"
)

// ReadInto reads node like ReadConfig and decodes the value into T. Struct
// fields are matched by their `config` tag, or case-insensitively by name.
// String values also decode into encoding.TextUnmarshaler and time.Duration
// fields.
//
// Example:
//
//	type Config struct {
//		Port  int           `config:"port"`
//		Hosts []string      `config:"hosts"`
//		TTL   time.Duration `config:"ttl"`
//	}
//
//	cfg, err := envdsl.ReadInto[Config](envdsl.Group(
//		envdsl.Field("port", envdsl.Number("PORT")),
//		envdsl.Field("hosts", envdsl.Array("HOSTS").Strings()),
//		envdsl.Field("ttl", envdsl.Duration("TTL").Default(time.Minute)),
//	))
func ReadInto[T any](node Node, opts ...Option) (T, error) {
	var out T

	value, err := ReadConfig(node, opts...)
	if err != nil {
		return out, err
	}

	if err := decode(value, &out); err != nil {
		return out, errors.Join(ErrDecodeConfig, err)
	}
	return out, nil
}

// MustReadInto works like ReadInto but panics on error.
func MustReadInto[T any](node Node, opts ...Option) T {
	out, err := ReadInto[T](node, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

func decode(value any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(value)
}
