package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	// Initialize RandR if not already done
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	// Get screen resources
	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		// Get output name
		outputName := fmt.Sprintf("Monitor%d", i)
		if len(crtcInfo.Outputs) > 0 {
			outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
			if err == nil {
				outputName = string(outputInfo.Name)
			}
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// PrimaryMonitor returns the monitor driven by the XRandR primary output.
// Falls back to the first active monitor, and to the root screen dimensions
// when RandR reports no usable monitor at all.
func (c *Connection) PrimaryMonitor() (Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return Monitor{}, err
	}
	if len(monitors) == 0 {
		screen := c.XUtil.Screen()
		return Monitor{
			Name:   "root",
			Width:  int(screen.WidthInPixels),
			Height: int(screen.HeightInPixels),
		}, nil
	}

	primary, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply()
	if err != nil || primary.Output == 0 {
		return monitors[0], nil
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return monitors[0], nil
	}

	outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), primary.Output, resources.ConfigTimestamp).Reply()
	if err != nil || outputInfo.Crtc == 0 {
		return monitors[0], nil
	}

	crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), outputInfo.Crtc, resources.ConfigTimestamp).Reply()
	if err != nil || crtcInfo.Width == 0 || crtcInfo.Height == 0 {
		return monitors[0], nil
	}

	return Monitor{
		Name:   string(outputInfo.Name),
		X:      int(crtcInfo.X),
		Y:      int(crtcInfo.Y),
		Width:  int(crtcInfo.Width),
		Height: int(crtcInfo.Height),
	}, nil
}
