package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		wantVersion           string
		wantDate              string
		wantCommit            string
	}{
		{
			name:        "all stamped",
			version:     "1.4.0",
			date:        "2026-10-01",
			commit:      "3f2a9c1",
			wantVersion: "1.4.0",
			wantDate:    "2026-10-01",
			wantCommit:  "3f2a9c1",
		},
		{
			name:        "nothing stamped",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCommit:  "N/A",
		},
		{
			name:        "only commit missing",
			version:     "1.4.0",
			date:        "2026-10-01",
			wantVersion: "1.4.0",
			wantDate:    "2026-10-01",
			wantCommit:  "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCommit, info.BuildCommit())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", "3f2a9c1")

	assert.Equal(t,
		"Build version: 1.4.0\nBuild date: N/A\nBuild commit: 3f2a9c1\n",
		info.String())
}
