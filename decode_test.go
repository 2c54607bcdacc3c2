package envdsl_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envdsl"
)

type serverConfig struct {
	Host    string        `config:"host"`
	Port    int           `config:"port"`
	Debug   bool          `config:"debug"`
	Origins []string      `config:"origins"`
	Timeout time.Duration `config:"timeout"`
	Token   string        `config:"token"`
	DB      struct {
		URL      string `config:"url"`
		MaxConns int    `config:"max_conns"`
	} `config:"db"`
}

func serverShape() envdsl.Shape {
	return envdsl.Group(
		envdsl.Field("host", envdsl.String("HOST").Default("0.0.0.0")),
		envdsl.Field("port", envdsl.Number("PORT")),
		envdsl.Field("debug", envdsl.Boolean("DEBUG").Default(false)),
		envdsl.Field("origins", envdsl.Array("ORIGINS").Strings()),
		envdsl.Field("timeout", envdsl.Duration("TIMEOUT").Default(5*time.Second)),
		envdsl.Field("token", envdsl.String("TOKEN").Optional()),
		envdsl.Field("db", envdsl.Group(
			envdsl.Field("url", envdsl.String("DB_URL").Sensitive()),
			envdsl.Field("max_conns", envdsl.Number("DB_MAX_CONNS").Default(10)),
		)),
	)
}

func TestReadInto(t *testing.T) {
	t.Parallel()

	env := dotenv(t, `
PORT=8080
ORIGINS=https://a.example,https://b.example
DB_URL=postgres://localhost/app
DEBUG=true
`)

	cfg, err := envdsl.ReadInto[serverConfig](serverShape(), envdsl.Silent(), envdsl.WithEnviron(env))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, "postgres://localhost/app", cfg.DB.URL)
	assert.Equal(t, 10, cfg.DB.MaxConns)
}

func TestReadInto_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()
		_, err := envdsl.ReadInto[serverConfig](serverShape(), envdsl.Silent(), envdsl.WithEnviron(envdsl.Vars{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, envdsl.ErrInvalidConfig))
		assert.False(t, errors.Is(err, envdsl.ErrDecodeConfig))
	})

	t.Run("decode failure", func(t *testing.T) {
		t.Parallel()
		type target struct {
			Port bool `config:"port"`
		}
		shape := envdsl.Group(envdsl.Field("port", envdsl.String("PORT")))

		_, err := envdsl.ReadInto[target](shape, envdsl.Silent(), envdsl.WithEnviron(envdsl.Vars{"PORT": "x"}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, envdsl.ErrDecodeConfig))
	})
}

func TestReadInto_Hooks(t *testing.T) {
	t.Parallel()

	type target struct {
		Level   slog.Level    `config:"level"`
		Timeout time.Duration `config:"timeout"`
	}
	shape := envdsl.Group(
		envdsl.Field("level", envdsl.String("LOG_LEVEL")),
		envdsl.Field("timeout", envdsl.String("TIMEOUT")),
	)

	t.Run("text values", func(t *testing.T) {
		t.Parallel()
		cfg, err := envdsl.ReadInto[target](shape, envdsl.Silent(),
			envdsl.WithEnviron(envdsl.Vars{"LOG_LEVEL": "warn", "TIMEOUT": "250ms"}))
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, cfg.Level)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("unmarshal failure", func(t *testing.T) {
		t.Parallel()
		_, err := envdsl.ReadInto[target](shape, envdsl.Silent(),
			envdsl.WithEnviron(envdsl.Vars{"LOG_LEVEL": "loud", "TIMEOUT": "1s"}))
		assert.ErrorIs(t, err, envdsl.ErrDecodeConfig)
	})
}

func TestMustReadInto(t *testing.T) {
	t.Parallel()

	port := envdsl.MustReadInto[int](envdsl.Number("PORT"), envdsl.Silent(), envdsl.WithEnviron(envdsl.Vars{"PORT": "9000"}))
	assert.Equal(t, 9000, port)

	assert.Panics(t, func() {
		envdsl.MustReadInto[int](envdsl.Number("PORT"), envdsl.Silent(), envdsl.WithEnviron(envdsl.Vars{}))
	})
}
