package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/samuelfneumann/gobandit/bandit"
)

// Type identifies a registered agent configuration type
type Type string

// Config represents a configuration of a specific agent. Configs are
// JSON serializable so that experiments can be described fully by
// configuration files.
type Config interface {
	// Type returns the type of agent the Config configures
	Type() Type

	// Validate returns an error if the Config describes an invalid
	// agent
	Validate() error

	// CreateAgent creates the agent that the Config describes on the
	// given bandit
	CreateAgent(b bandit.Bandit, seed uint64) (Agent, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[Type]reflect.Type{}
)

// Register makes an agent Config type available to CreateConfig under
// the Config's Type. It is expected to be called from the init
// function of each agent package.
func Register(c Config) {
	registryMu.Lock()
	defer registryMu.Unlock()

	ty := reflect.TypeOf(c)
	if ty.Kind() == reflect.Ptr {
		ty = ty.Elem()
	}
	registry[c.Type()] = ty
}

// CreateConfig unmarshals data into a fresh Config of the registered
// type t.
func CreateConfig(t Type, data json.RawMessage) (Config, error) {
	registryMu.RLock()
	ty, ok := registry[t]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("createconfig: no such agent type %v", t)
	}

	value := reflect.New(ty).Interface()
	if err := json.Unmarshal(data, value); err != nil {
		return nil, fmt.Errorf("createconfig: could not unmarshal %v "+
			"config: %v", t, err)
	}

	config, ok := reflect.ValueOf(value).Elem().Interface().(Config)
	if !ok {
		return nil, fmt.Errorf("createconfig: %v does not implement "+
			"Config", ty)
	}
	return config, nil
}
