// Package devices holds the device-action collaborator. The stub controller
// stands in for real hardware integration (MQTT, GPIO, a vendor API); the
// dispatch core only sees the DeviceController port.
package devices

import (
	"context"
	"fmt"

	"deskpilot/internal/observability"
)

type StubController struct{}

func NewStubController() *StubController {
	return &StubController{}
}

func (c *StubController) TurnOn(ctx context.Context, deviceName string) (string, error) {
	observability.LoggerFromContext(ctx).Info("device on", "device", deviceName)
	return fmt.Sprintf("✅ Turned on %s", deviceName), nil
}

func (c *StubController) TurnOff(ctx context.Context, deviceName string) (string, error) {
	observability.LoggerFromContext(ctx).Info("device off", "device", deviceName)
	return fmt.Sprintf("✅ Turned off %s", deviceName), nil
}
