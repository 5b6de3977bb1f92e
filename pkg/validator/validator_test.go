package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	active := true

	tests := []struct {
		name     string
		user     [4]string
		isActive *bool
		want     []string
	}{
		{name: "complete", user: [4]string{"Ana", "ana@x.com", "p1", "123"}, isActive: &active},
		{name: "all missing", want: []string{"name", "email", "password", "document", "isActive"}},
		{name: "blank name", user: [4]string{"  ", "ana@x.com", "p1", "123"}, isActive: &active, want: []string{"name"}},
		{name: "missing status", user: [4]string{"Ana", "ana@x.com", "p1", "123"}, want: []string{"isActive"}},
		// Only presence is checked.
		{name: "odd email accepted", user: [4]string{"Ana", "not-an-email", "p1", "123"}, isActive: &active},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateUser(tt.user[0], tt.user[1], tt.user[2], tt.user[3], tt.isActive)
			assert.Equal(t, len(tt.want) > 0, errs.HasErrors())
			assert.Len(t, errs, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	inactive := false
	assert.False(t, ValidateStatus(&inactive).HasErrors())
	assert.Contains(t, ValidateStatus(nil), "isActive")
}
