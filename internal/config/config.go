package config

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal"
)

var ErrTokenRequired = errors.New("telegram bot token is required")

var digestTimeRx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type Config struct {
	Dev                 bool          `envconfig:"DEV" default:"false"`
	TelegramToken       string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramTokenSSMKey string        `envconfig:"TELEGRAM_TOKEN_SSM_PARAM"`
	StoreDriver         string        `envconfig:"STORE_DRIVER" default:"file"`
	StorePath           string        `envconfig:"STORE_PATH" default:"users.json"`
	APIURL              string        `envconfig:"API_URL" default:"https://ispanskie-msk-bot-ver.vercel.app/api/digest"`
	APITimeout          time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
	SendInterval        time.Duration `envconfig:"SEND_INTERVAL" default:"500ms"`
	DigestTime          string        `envconfig:"DIGEST_TIME" default:"21:00"`
	DigestSchedule      string        `envconfig:"DIGEST_SCHEDULE"`
	Timezone            string        `envconfig:"TIMEZONE" default:"Europe/Moscow"`
	WebAppURL           string        `envconfig:"WEB_APP_URL" default:"https://ispanskie-msk-bot-ver.vercel.app"`
	BotUsername         string        `envconfig:"BOT_USERNAME" default:"ispanskie_msk_bot"`

	location *time.Location
}

// ParameterGetter is the part of the SSM client used to resolve the token.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func NewConfig(ctx context.Context) (*Config, error) {
	return newConfig(ctx, defaultSSMClient)
}

func newConfig(ctx context.Context, ssmClient func(context.Context) (ParameterGetter, error)) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.TelegramToken == "" && res.TelegramTokenSSMKey != "" {
		client, err := ssmClient(ctx)
		if err != nil {
			return nil, err
		}
		res.TelegramToken, err = getSSMToken(ctx, client, res.TelegramTokenSSMKey)
		if err != nil {
			return nil, err
		}
	}

	if res.TelegramToken == "" {
		return nil, ErrTokenRequired
	}

	if err := res.validate(); err != nil {
		return nil, err
	}

	return res, nil
}

// Location is the zone used for the digest schedule and run timestamps.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case dal.DriverFile, dal.DriverBolt:
	default:
		return fmt.Errorf("STORE_DRIVER=%q: %w", c.StoreDriver, dal.ErrUnknownDriver)
	}
	if c.StorePath == "" {
		return errors.New("STORE_PATH must not be empty")
	}
	if c.SendInterval < 0 {
		return fmt.Errorf("SEND_INTERVAL=%s must not be negative", c.SendInterval)
	}
	if !digestTimeRx.MatchString(c.DigestTime) {
		return fmt.Errorf("DIGEST_TIME=%q must be in HH:MM format", c.DigestTime)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("load TIMEZONE=%q: %w", c.Timezone, err)
	}
	c.location = loc

	return nil
}

func defaultSSMClient(ctx context.Context) (ParameterGetter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

func getSSMToken(ctx context.Context, client ParameterGetter, name string) (string, error) {
	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
