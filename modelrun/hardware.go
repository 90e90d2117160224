package modelrun

import (
	"context"
	"fmt"
)

// Hardware describes a hardware SKU that models can run on. Pass the
// SKU to models.Create.
type Hardware struct {
	// Name is the human-readable name, e.g. "Nvidia A40 GPU".
	Name string `json:"name"`

	// SKU is the identifier used when creating models.
	SKU string `json:"sku"`
}

// ListHardware returns the hardware SKUs available for running models.
// The listing is small and not paginated.
func (c *Client) ListHardware(ctx context.Context) ([]Hardware, error) {
	var hardware []Hardware
	if err := c.transport.Get(ctx, "/v1/hardware", nil, &hardware); err != nil {
		return nil, fmt.Errorf("failed to list hardware: %w", err)
	}
	return hardware, nil
}
