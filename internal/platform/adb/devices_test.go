package adb

import (
	"testing"

	"github.com/tmcf/droidctl/internal/platform"
)

func TestParseDeviceList(t *testing.T) {
	out := `List of devices attached
* daemon not running; starting now at tcp:5037
* daemon started successfully
emulator-5554          device product:sdk_gphone64_x86_64 model:sdk_gphone64_x86_64 device:emu64xa transport_id:1
R5CT40XYZAB            unauthorized transport_id:2

`
	got := parseDeviceList(out)
	want := []platform.DeviceInfo{
		{Serial: "emulator-5554", State: "device", Model: "sdk_gphone64_x86_64"},
		{Serial: "R5CT40XYZAB", State: "unauthorized"},
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d devices, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("device %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseDeviceListEmpty(t *testing.T) {
	if got := parseDeviceList("List of devices attached\n\n"); len(got) != 0 {
		t.Errorf("expected no devices, got %+v", got)
	}
}
