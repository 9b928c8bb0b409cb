package envstruct_test

import (
	"strings"
	"testing"

	"github.com/myrjola/gavel/internal/envstruct"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	type args struct {
		v         any
		lookupEnv func(string) (string, bool)
	}
	tests := []struct {
		name    string
		args    args
		want    any
		wantErr error
	}{
		{
			name: "nil",
			args: args{
				v:         nil,
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "not pointer",
			args: args{
				v:         struct{}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "empty struct",
			args: args{
				v:         &struct{}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    &struct{}{},
			wantErr: nil,
		},
		{
			name: "empty env",
			args: args{
				v: &struct {
					EnvVar string `env:"ENV_VAR"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrEnvNotSet,
		},
		{
			name: "env is set",
			args: args{
				v: &struct {
					EnvVar string `env:"ENV_VAR"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "env_var", true },
			},
			want: &struct {
				EnvVar string `env:"ENV_VAR"`
			}{EnvVar: "env_var"},
			wantErr: nil,
		},
		{
			name: "default value",
			args: args{
				v: &struct {
					EnvVar string `env:"ENV_VAR" envDefault:"fallback"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want: &struct {
				EnvVar string `env:"ENV_VAR" envDefault:"fallback"`
			}{EnvVar: "fallback"},
			wantErr: nil,
		},
		{
			name: "picks correct env variable",
			args: args{
				v: &struct {
					EnvVar     string `env:"ENV_VAR"`
					EnvVar2    string `env:"ENV_VAR2"`
					OtherValue string
				}{},
				lookupEnv: func(s string) (string, bool) { return strings.ToLower(s), true },
			},
			want: &struct {
				EnvVar     string `env:"ENV_VAR"`
				EnvVar2    string `env:"ENV_VAR2"`
				OtherValue string
			}{EnvVar: "env_var", EnvVar2: "env_var2", OtherValue: ""},
			wantErr: nil,
		},
		{
			name: "unsupported field type",
			args: args{
				v: &struct {
					Number int `env:"NUMBER"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "1", true },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envstruct.Populate(tt.args.v, tt.args.lookupEnv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want != nil {
				require.EqualExportedValues(t, tt.want, tt.args.v)
			}
		})
	}
}
