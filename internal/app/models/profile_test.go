package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileIsComplete(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{"fresh row", Profile{}, false},
		{"name only", Profile{Name: "Asha Rao"}, false},
		{"username only", Profile{Username: "asha"}, false},
		{"both set", Profile{Name: "Asha Rao", Username: "asha"}, true},
		{"phone does not matter", Profile{Name: "Asha Rao", Username: "asha", Phone: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IsComplete())
		})
	}
}
