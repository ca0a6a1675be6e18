package dropdown

import (
	"context"

	"github.com/super-effective/dropdown-input/pkg/dropdown/internal"
	"github.com/super-effective/dropdown-input/pkg/dropdown/internal/evdevinput"
)

// KeyDevice reads key presses from a Linux input device, for handhelds whose
// buttons show up as an evdev keyboard SDL does not see. Feed Keys into
// Screen.SetKeySource.
type KeyDevice struct {
	reader *evdevinput.Reader
}

// OpenKeyDevice opens the device at path and starts reading. Cancelling ctx
// closes the device, as does Close.
func OpenKeyDevice(ctx context.Context, path string) (*KeyDevice, error) {
	reader, err := evdevinput.Open(path, internal.GetInternalLogger())
	if err != nil {
		return nil, NewInfrastructureError("open_input_device", err)
	}
	reader.Start(ctx)
	return &KeyDevice{reader: reader}, nil
}

// Keys returns the translated key names. The channel closes when reading stops.
func (k *KeyDevice) Keys() <-chan string {
	return k.reader.Keys()
}

// Close releases the device.
func (k *KeyDevice) Close() error {
	return k.reader.Close()
}
