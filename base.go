package bhexpress

// Base is embedded by resource wrappers. It holds the client the wrapper
// delegates its requests to.
//
//	type Boletas struct {
//	    bhexpress.Base
//	}
//
//	func (b *Boletas) List(ctx context.Context) (*bhexpress.Response, error) {
//	    return b.Client().Get(ctx, "/boletas", nil)
//	}
type Base struct {
	client *Client
}

// NewBase creates a Base with its own client built from opts.
func NewBase(opts ...Option) (Base, error) {
	c, err := New(opts...)
	if err != nil {
		return Base{}, err
	}
	return Base{client: c}, nil
}

// NewBaseWithClient creates a Base that shares an existing client.
func NewBaseWithClient(c *Client) Base {
	return Base{client: c}
}

// Client returns the underlying client.
func (b Base) Client() *Client {
	return b.client
}
