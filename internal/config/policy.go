package config

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Policy holds entitlement policy knobs. These are product decisions, not
// computed values: the free-tier spell allowance, how long a paid upgrade
// lasts, and what the yearly plan costs.
type Policy struct {
	FreeSpellLimit   int     `mapstructure:"freeSpellLimit"`
	PaidDurationDays int     `mapstructure:"paidDurationDays"`
	PlanAmount       float64 `mapstructure:"planAmount"`
	PlanCurrency     string  `mapstructure:"planCurrency"`
	PlanName         string  `mapstructure:"planName"`
}

func DefaultPolicy() Policy {
	return Policy{
		FreeSpellLimit:   3,
		PaidDurationDays: 365,
		PlanAmount:       19.00,
		PlanCurrency:     "usd",
		PlanName:         "pro",
	}
}

func (p Policy) PaidDuration() time.Duration {
	return time.Duration(p.PaidDurationDays) * 24 * time.Hour
}

// PolicyHolder exposes the current policy and hot-reloads it when the
// backing config file changes.
type PolicyHolder struct {
	current atomic.Value // holds Policy
}

func NewPolicyHolder(log *zap.Logger) (*PolicyHolder, error) {
	log = log.Named("config.policy")
	v := viper.New()

	v.SetConfigName("policy")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/grimoire")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GRIMOIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPolicy()
	v.SetDefault("policy.freeSpellLimit", defaults.FreeSpellLimit)
	v.SetDefault("policy.paidDurationDays", defaults.PaidDurationDays)
	v.SetDefault("policy.planAmount", defaults.PlanAmount)
	v.SetDefault("policy.planCurrency", defaults.PlanCurrency)
	v.SetDefault("policy.planName", defaults.PlanName)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var policy Policy
	if err := v.UnmarshalKey("policy", &policy); err != nil {
		return nil, err
	}
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}

	holder := &PolicyHolder{}
	holder.current.Store(policy)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Policy
		if err := v.UnmarshalKey("policy", &updated); err != nil {
			log.Error("policy reload failed", zap.Error(err))
			return
		}
		if err := validatePolicy(updated); err != nil {
			log.Warn("invalid policy config ignored", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		log.Info("policy reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

func (h *PolicyHolder) Get() Policy {
	return h.current.Load().(Policy)
}

// StaticPolicyHolder returns a holder pinned to the given policy. Used by tests.
func StaticPolicyHolder(p Policy) *PolicyHolder {
	holder := &PolicyHolder{}
	holder.current.Store(p)
	return holder
}

func validatePolicy(p Policy) error {
	if p.FreeSpellLimit < 0 {
		return errors.New("policy.freeSpellLimit cannot be negative")
	}
	if p.PaidDurationDays <= 0 {
		return errors.New("policy.paidDurationDays must be positive")
	}
	if p.PlanAmount <= 0 {
		return errors.New("policy.planAmount must be positive")
	}
	if strings.TrimSpace(p.PlanCurrency) == "" {
		return errors.New("policy.planCurrency cannot be empty")
	}
	return nil
}
