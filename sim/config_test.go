package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiskConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *DiskConfig)
		wantErr bool
	}{
		{"defaults", func(c *DiskConfig) {}, false},
		{"zero cylinders", func(c *DiskConfig) { c.Cylinders = 0 }, true},
		{"head past end", func(c *DiskConfig) { c.StartHead = c.Cylinders }, true},
		{"negative head", func(c *DiskConfig) { c.StartHead = -1 }, true},
		{"zero direction", func(c *DiskConfig) { c.StartDir = 0 }, true},
		{"down is fine", func(c *DiskConfig) { c.StartDir = -1 }, false},
		{"negative seek", func(c *DiskConfig) { c.SeekPerCyl = -0.1 }, true},
		{"zero service is fine", func(c *DiskConfig) { c.ServiceTime = 0 }, false},
		{"negative service", func(c *DiskConfig) { c.ServiceTime = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDiskConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDiskConfig_ValidateRequests(t *testing.T) {
	cfg := DefaultDiskConfig()
	assert.NoError(t, cfg.ValidateRequests([]Request{req(0, 0, 0), req(1, 1, 199)}))
	assert.Error(t, cfg.ValidateRequests([]Request{req(0, 0, 200)}))
	assert.Error(t, cfg.ValidateRequests([]Request{req(0, 0, -1)}))
	assert.Error(t, cfg.ValidateRequests([]Request{req(0, -1, 5)}))
}

func TestRequest_String(t *testing.T) {
	assert.Equal(t, "Request: (ID: 3, ArrivalTime: 1.500, Cylinder: 7)", req(3, 1.5, 7).String())
	r := reqDL(3, 1.5, 7, 9)
	assert.True(t, r.HasDeadline())
	assert.Equal(t, "Request: (ID: 3, ArrivalTime: 1.500, Cylinder: 7, Deadline: 9.000)", r.String())
}
