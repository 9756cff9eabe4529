package environment

import (
	"strings"

	"github.com/mileusna/useragent"
)

const (
	DeviceDesktop = 0
	DeviceMobile  = 1
	DeviceTablet  = 2
)

const (
	BrowserChrome           = 0
	BrowserFirefox          = 1
	BrowserSafari           = 2
	BrowserEdge             = 3
	BrowserInternetExplorer = 4
	BrowserOther            = 5
)

const (
	OSWindows = 0
	OSMac     = 1
	OSLinux   = 2
	OSUnix    = 3
	OSIOS     = 4
	OSAndroid = 5
	OSOther   = 6
)

// Device holds the enum values derived from a user agent string.
type Device struct {
	Type    int
	OS      int
	Browser int
}

// ParseDevice classifies a user agent. An empty user agent is a desktop with
// unknown browser and OS.
func ParseDevice(ua string) Device {
	parsed := useragent.Parse(ua)
	return Device{
		Type:    deviceType(parsed),
		OS:      osType(parsed, ua),
		Browser: browserType(parsed),
	}
}

func deviceType(ua useragent.UserAgent) int {
	switch {
	case ua.Tablet:
		return DeviceTablet
	case ua.Mobile:
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

func browserType(ua useragent.UserAgent) int {
	switch ua.Name {
	case useragent.Edge:
		return BrowserEdge
	case useragent.Chrome, useragent.HeadlessChrome:
		return BrowserChrome
	case useragent.Firefox:
		return BrowserFirefox
	case useragent.Safari:
		return BrowserSafari
	case useragent.InternetExplorer:
		return BrowserInternetExplorer
	default:
		return BrowserOther
	}
}

func osType(ua useragent.UserAgent, raw string) int {
	switch ua.OS {
	case useragent.Android:
		return OSAndroid
	case useragent.IOS:
		return OSIOS
	case useragent.Windows, useragent.WindowsPhone:
		return OSWindows
	case useragent.MacOS:
		return OSMac
	case useragent.Linux, useragent.ChromeOS:
		return OSLinux
	case "FreeBSD", "OpenBSD", "NetBSD", "SunOS":
		return OSUnix
	}
	if strings.Contains(raw, "X11") {
		return OSUnix
	}
	return OSOther
}
