//go:build js && wasm

package settings

import (
	"encoding/json"
	"syscall/js"
)

type wasmStorage struct{}

func newStorage() Storage {
	return &wasmStorage{}
}

const wasmKey = "solo_mission_settings"

func (s *wasmStorage) Save(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	js.Global().Get("localStorage").Call("setItem", wasmKey, string(data))
	return nil
}

func (s *wasmStorage) Load() (Settings, error) {
	item := js.Global().Get("localStorage").Call("getItem", wasmKey)
	if item.IsNull() || item.IsUndefined() {
		return Settings{}, nil
	}
	var loaded Settings
	if err := json.Unmarshal([]byte(item.String()), &loaded); err != nil {
		return Settings{}, err
	}
	return loaded, nil
}
