package commands

import (
	"fmt"
	"os"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/nats-io/nats.go"
)

// publishPages hands fetched pages off to a NATS subject, one message per
// page, in page order.
func publishPages(url, subject string, pages []*ati.Response) error {
	if url == "" {
		url = nats.DefaultURL
	}

	conn, err := nats.Connect(url, nats.Name("ati-cli"))
	if err != nil {
		return fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	defer conn.Close()

	for i, page := range pages {
		err := conn.Publish(subject, page.Body)
		if err != nil {
			return fmt.Errorf("publishing page %d to %s: %w", i+1, subject, err)
		}
	}

	err = conn.Flush()
	if err != nil {
		return fmt.Errorf("flushing NATS connection: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Published %d page(s) to %s\n", len(pages), subject)

	return nil
}
