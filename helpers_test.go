package envdsl_test

import (
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envdsl"
)

// dotenv builds an in-memory environment from dotenv text.
func dotenv(t *testing.T, src string) envdsl.Vars {
	t.Helper()
	vars, err := godotenv.Unmarshal(src)
	require.NoError(t, err)
	return envdsl.Vars(vars)
}
