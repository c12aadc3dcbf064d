package surround

import (
	"fmt"
	"strings"
)

// Channel identifies one role of the 5.1 layout. Its value is the channel's
// index in a [Block].
type Channel int

const (
	L Channel = iota
	R
	C
	LFE
	LS
	RS
)

// NumChannels is the fixed channel count of a 5.1 buffer.
const NumChannels = 6

// NumMains is the number of full-range channels.
const NumMains = 5

// Mains lists the full-range channels in processing order.
var Mains = [NumMains]Channel{L, R, C, LS, RS}

var channelNames = [NumChannels]string{"L", "R", "C", "LFE", "LS", "RS"}

// Valid reports whether c is one of the six layout roles.
func (c Channel) Valid() bool {
	return c >= L && c <= RS
}

// IsMain reports whether c is a full-range channel (anything but LFE).
func (c Channel) IsMain() bool {
	return c.Valid() && c != LFE
}

func (c Channel) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// ParseChannel maps a channel name (case-insensitive) to its role.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if strings.EqualFold(n, name) {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("surround: unknown channel %q", name)
}
