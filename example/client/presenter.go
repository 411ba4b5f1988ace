package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
)

const (
	overlayTitle   = "Connection problems :("
	overlayMessage = "To continue, you should be online"
)

// TerminalPresenter prints adverts to a terminal. While offline it shows the
// connection overlay instead and replays the last advert once back online.
type TerminalPresenter struct {
	out io.Writer

	mu      sync.Mutex
	offline bool
	current *url.URL
}

func NewTerminalPresenter(out io.Writer) *TerminalPresenter {
	return &TerminalPresenter{out: out}
}

func (p *TerminalPresenter) Present(_ context.Context, target *url.URL) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = target
	if p.offline {
		return p.showOverlay()
	}
	return p.showAdvert()
}

func (p *TerminalPresenter) OnReachabilityChange(_ context.Context, online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.offline = !online
	if p.offline {
		_ = p.showOverlay()
		return
	}
	if p.current != nil {
		_ = p.showAdvert()
	}
}

func (p *TerminalPresenter) showAdvert() error {
	_, err := fmt.Fprintf(p.out, "advert: %s\n", p.current)
	return err
}

func (p *TerminalPresenter) showOverlay() error {
	_, err := fmt.Fprintf(p.out, "%s\n%s\n", overlayTitle, overlayMessage)
	return err
}
