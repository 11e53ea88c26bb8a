package config

import "context"

func NewConfigWithSSM(ctx context.Context, client ParameterGetter, err error) (*Config, error) {
	return newConfig(ctx, func(context.Context) (ParameterGetter, error) {
		return client, err
	})
}
