package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

type savedModel struct {
	Kind   Kind            `json:"kind"`
	Params json.RawMessage `json:"params"`
}

// Save writes a trained model to path as JSON.
func Save(path string, m Model) error {
	var kind Kind
	switch m.(type) {
	case *Logistic:
		kind = KindLogistic
	case *LinearSVM:
		kind = KindSVM
	case *MLP:
		kind = KindMLP
	default:
		return fmt.Errorf("cannot save model of type %T", m)
	}

	params, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	data, err := json.MarshalIndent(savedModel{Kind: kind, Params: params}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a model written by Save.
func Load(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved savedModel
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := NewModel(saved.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(saved.Params, m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
