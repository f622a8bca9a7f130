package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/scorta/pkg/inventory"
	"tableflip.dev/scorta/pkg/product"
)

// The persistence collaborator is an opaque key-value store. The core
// saves the product collection after every successful mutation and the
// event log alongside it; a missing key reads back as an empty
// collection, never an error.
const (
	KeyProducts = "inventory-products"
	KeyEvents   = "inventory-events"
	KeyHistory  = "inventory-history"
)

// Persistence defines the persistence contract for inventory documents.
// The undo history is stored too so an undo can cross process restarts.
type Persistence interface {
	LoadProducts(ctx context.Context) ([]*product.Product, error)
	SaveProducts(ctx context.Context, products []*product.Product) error
	LoadEvents(ctx context.Context) ([]inventory.Event, error)
	SaveEvents(ctx context.Context, events []inventory.Event) error
	LoadHistory(ctx context.Context) ([][]*product.Product, error)
	SaveHistory(ctx context.Context, stack [][]*product.Product) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadProducts(_ context.Context) ([]*product.Product, error) {
	data, ok, err := p.read(KeyProducts)
	if err != nil {
		return nil, fmt.Errorf("store: read products: %w", err)
	}
	if !ok {
		return []*product.Product{}, nil
	}
	var products []*product.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("store: decode products: %w", err)
	}
	out := make([]*product.Product, 0, len(products))
	for _, pr := range products {
		if pr == nil {
			fmt.Fprintf(os.Stderr, "%s: dropped null record\n", KeyProducts)
			continue
		}
		out = append(out, pr)
	}
	return out, nil
}

func (p *persistence) SaveProducts(_ context.Context, products []*product.Product) error {
	if products == nil {
		products = []*product.Product{}
	}
	return p.write(KeyProducts, products)
}

func (p *persistence) LoadEvents(_ context.Context) ([]inventory.Event, error) {
	data, ok, err := p.read(KeyEvents)
	if err != nil {
		return nil, fmt.Errorf("store: read events: %w", err)
	}
	if !ok {
		return []inventory.Event{}, nil
	}
	var events []inventory.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("store: decode events: %w", err)
	}
	return events, nil
}

func (p *persistence) SaveEvents(_ context.Context, events []inventory.Event) error {
	if events == nil {
		events = []inventory.Event{}
	}
	return p.write(KeyEvents, events)
}

func (p *persistence) LoadHistory(_ context.Context) ([][]*product.Product, error) {
	data, ok, err := p.read(KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("store: read history: %w", err)
	}
	if !ok {
		return [][]*product.Product{}, nil
	}
	var stack [][]*product.Product
	if err := json.Unmarshal(data, &stack); err != nil {
		return nil, fmt.Errorf("store: decode history: %w", err)
	}
	return stack, nil
}

func (p *persistence) SaveHistory(_ context.Context, stack [][]*product.Product) error {
	if stack == nil {
		stack = [][]*product.Product{}
	}
	return p.write(KeyHistory, stack)
}

func (p *persistence) read(key string) ([]byte, bool, error) {
	if !p.d.Has(key) {
		return nil, false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (p *persistence) write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// key "inventory-products" becomes inventory/products on disk.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
