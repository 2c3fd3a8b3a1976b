package buzzer

import (
	"github.com/leandrodaf/buzzer/sdk/contracts"
)

// NewBuzzer creates a buzzer with the specified options.
// It applies default options and builds the selected backend.
//
// opts ...contracts.Option: A variadic list of option functions to customize the buzzer.
//
// Returns:
//   - contracts.Buzzer: The backend handle. Use the package-level functions to drive it.
//   - error: An error, if any occurred while opening the backend.
func NewBuzzer(opts ...contracts.Option) (contracts.Buzzer, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	b, err := NewBackend(&options)
	if err != nil {
		return nil, err
	}

	options.Logger.Info("Buzzer created",
		options.Logger.Field().String("name", b.Name()),
		options.Logger.Field().String("backend", string(options.Backend)),
		options.Logger.Field().Strings("capabilities", Capabilities(b)))
	return b, nil
}
