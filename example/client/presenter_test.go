package main

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPresenter(t *testing.T) {
	ctx := context.Background()
	target, err := url.Parse("https://ads.example.com/shoes?idfa=device&gaid=app")
	require.NoError(t, err)

	t.Run("prints the advert while online", func(t *testing.T) {
		var out bytes.Buffer
		presenter := NewTerminalPresenter(&out)

		require.NoError(t, presenter.Present(ctx, target))

		assert.Equal(t, "advert: https://ads.example.com/shoes?idfa=device&gaid=app\n", out.String())
	})

	t.Run("shows the overlay while offline and replays once online", func(t *testing.T) {
		var out bytes.Buffer
		presenter := NewTerminalPresenter(&out)

		presenter.OnReachabilityChange(ctx, false)
		require.NoError(t, presenter.Present(ctx, target))
		assert.Equal(t, "Connection problems :(\nTo continue, you should be online\n"+
			"Connection problems :(\nTo continue, you should be online\n", out.String())

		out.Reset()
		presenter.OnReachabilityChange(ctx, true)
		assert.Equal(t, "advert: https://ads.example.com/shoes?idfa=device&gaid=app\n", out.String())
	})

	t.Run("coming online without an advert prints nothing", func(t *testing.T) {
		var out bytes.Buffer
		presenter := NewTerminalPresenter(&out)

		presenter.OnReachabilityChange(ctx, true)

		assert.Empty(t, out.String())
	})
}
