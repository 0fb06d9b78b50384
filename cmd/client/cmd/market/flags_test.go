package market

import (
	"testing"

	"marketstore/internal/domain/market"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldFlags_Template(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want market.Template
	}{
		{
			name: "no flags",
			args: nil,
			want: market.Template{},
		},
		{
			name: "explicit zero values are set",
			args: []string{"--zip", "", "--lat", "0"},
			want: market.Template{Zip: market.Some(""), Lat: market.Some(0.0)},
		},
		{
			name: "all fields",
			args: []string{
				"--id", "3", "--name", "A", "--address", "1 Main St", "--city", "Austin",
				"--county", "Travis", "--state", "TX", "--zip", "78701", "--lat", "30.27", "--long", "-97.74",
			},
			want: market.Template{
				ID:      market.Some[int64](3),
				Name:    market.Some("A"),
				Address: market.Some("1 Main St"),
				City:    market.Some("Austin"),
				County:  market.Some("Travis"),
				State:   market.Some("TX"),
				Zip:     market.Some("78701"),
				Lat:     market.Some(30.27),
				Long:    market.Some(-97.74),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			f := &fieldFlags{}
			f.register(fs, "test")

			require.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.want, f.template(fs))
		})
	}
}

func TestFieldFlags_Prefix(t *testing.T) {
	fs := pflag.NewFlagSet("update", pflag.ContinueOnError)
	values := &fieldFlags{}
	conditions := &fieldFlags{prefix: "where-"}
	values.register(fs, "value")
	conditions.register(fs, "condition")

	require.NoError(t, fs.Parse([]string{"--zip", "90000", "--where-city", "LA", "--where-id", "7"}))

	assert.Equal(t, market.Template{Zip: market.Some("90000")}, values.template(fs))
	assert.Equal(t, market.Template{City: market.Some("LA"), ID: market.Some[int64](7)}, conditions.template(fs))
}
