package commands

import (
	"testing"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateClient_MissingAuth(t *testing.T) {
	resetViper(t)
	viper.Set("params", "space={s:1}")

	_, err := createClient(false)
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestCreateClient_MissingParams(t *testing.T) {
	resetViper(t)
	viper.Set("auth", "apikey:k")

	_, err := createClient(false)
	require.ErrorIs(t, err, ErrParamsRequired)
}

func TestCreateClient_InvalidAuthPropagates(t *testing.T) {
	resetViper(t)
	viper.Set("auth", "bearer:token")
	viper.Set("params", "space={s:1}")

	_, err := createClient(false)
	require.ErrorIs(t, err, ati.ErrInvalidAuthFormat)
}

func TestCreateClient_Valid(t *testing.T) {
	resetViper(t)
	viper.Set("auth", "apikey:k")
	viper.Set("params", "space={s:1}")
	viper.Set("format", "csv")

	client, err := createClient(true)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestEffectiveFormat(t *testing.T) {
	resetViper(t)

	assert.Equal(t, ati.Format(""), effectiveFormat())

	viper.Set("format", "xml")
	assert.Equal(t, ati.FormatXML, effectiveFormat())
}

func TestApplyJQ(t *testing.T) {
	t.Parallel()

	body := []byte(`{"RowCounts":[{"RowCount":"7"},{"RowCount":"9"}]}`)

	lines, err := applyJQ(".RowCounts[].RowCount", body)
	require.NoError(t, err)
	assert.Equal(t, []string{`"7"`, `"9"`}, lines)
}

func TestApplyJQ_BadExpression(t *testing.T) {
	t.Parallel()

	_, err := applyJQ(".[", []byte(`{}`))
	require.Error(t, err)
}

func TestApplyJQ_NonJSONBody(t *testing.T) {
	t.Parallel()

	_, err := applyJQ(".", []byte("d_source;m_visits\n"))
	require.ErrorIs(t, err, ErrBodyNotJSON)
}
