package app

import (
	"context"
	"fmt"

	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/loadorder"
	"github.com/tacogips/dzmod/internal/mod"
)

// OrderOptions holds the shared options for load-order operations.
type OrderOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// ServerDir is the server installation directory.
	ServerDir string
	// LoadOrderPath is the server config file carrying the load order.
	LoadOrderPath string
}

// OrderResult holds the load order after an operation.
type OrderResult struct {
	// Names is the load order, server-file sequence.
	Names []string
	// Changed reports whether the operation modified the file.
	Changed bool
}

// OrderList reads the current load order.
func OrderList(ctx context.Context, opts OrderOptions) (*OrderResult, error) {
	list, err := loadorder.NewStore(opts.LoadOrderPath).Load()
	if err != nil {
		return nil, NewLoadOrderError("failed to read load order", err)
	}
	return &OrderResult{Names: list.Names()}, nil
}

// OrderAdd appends an installed mod to the end of the load order. The
// name must resolve against the inventory; the canonical directory name
// is what gets written, so casing in the config matches the disk.
func OrderAdd(ctx context.Context, opts OrderOptions, name string) (*OrderResult, error) {
	inv, err := scanSearchPaths(opts.Config, opts.ServerDir)
	if err != nil {
		return nil, err
	}
	installed := inv.ByName(name)
	if installed == nil {
		return nil, NewValidationError(
			fmt.Sprintf("mod %s is not installed", mod.EnsurePrefix(name)), nil)
	}

	store := loadorder.NewStore(opts.LoadOrderPath)
	list, err := store.Load()
	if err != nil {
		return nil, NewLoadOrderError("failed to read load order", err)
	}

	changed := list.Append(installed.Name)
	if changed {
		if err := store.Save(list); err != nil {
			return nil, NewLoadOrderError("failed to write load order", err)
		}
	}
	return &OrderResult{Names: list.Names(), Changed: changed}, nil
}

// OrderRemove removes a mod from the load order.
func OrderRemove(ctx context.Context, opts OrderOptions, name string) (*OrderResult, error) {
	return mutateOrder(opts, func(list *loadorder.List) (bool, error) {
		if !list.Remove(name) {
			return false, NewValidationError(
				fmt.Sprintf("mod %s is not in the load order", name), nil)
		}
		return true, nil
	})
}

// OrderMove moves a mod to the given position, counted from zero.
func OrderMove(ctx context.Context, opts OrderOptions, name string, to int) (*OrderResult, error) {
	return mutateOrder(opts, func(list *loadorder.List) (bool, error) {
		from := list.IndexOf(name)
		if from < 0 {
			return false, NewValidationError(
				fmt.Sprintf("mod %s is not in the load order", name), nil)
		}
		if from == to {
			return false, nil
		}
		if err := list.MoveTo(from, to); err != nil {
			return false, NewValidationError(err.Error(), nil)
		}
		return true, nil
	})
}

// OrderUp moves a mod one position earlier. Already first is a no-op.
func OrderUp(ctx context.Context, opts OrderOptions, name string) (*OrderResult, error) {
	return orderStep(opts, name, -1)
}

// OrderDown moves a mod one position later. Already last is a no-op.
func OrderDown(ctx context.Context, opts OrderOptions, name string) (*OrderResult, error) {
	return orderStep(opts, name, +1)
}

func orderStep(opts OrderOptions, name string, dir int) (*OrderResult, error) {
	return mutateOrder(opts, func(list *loadorder.List) (bool, error) {
		at := list.IndexOf(name)
		if at < 0 {
			return false, NewValidationError(
				fmt.Sprintf("mod %s is not in the load order", name), nil)
		}
		swapAt := at
		if dir < 0 {
			swapAt = at - 1
		}
		if swapAt < 0 || swapAt >= list.Len()-1 {
			return false, nil
		}
		if err := list.SwapAdjacent(swapAt); err != nil {
			return false, NewValidationError(err.Error(), nil)
		}
		return true, nil
	})
}

// mutateOrder loads the list, applies the mutation, and saves only when
// something changed.
func mutateOrder(opts OrderOptions, mutate func(*loadorder.List) (bool, error)) (*OrderResult, error) {
	store := loadorder.NewStore(opts.LoadOrderPath)
	list, err := store.Load()
	if err != nil {
		return nil, NewLoadOrderError("failed to read load order", err)
	}

	changed, err := mutate(list)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := store.Save(list); err != nil {
			return nil, NewLoadOrderError("failed to write load order", err)
		}
	}
	return &OrderResult{Names: list.Names(), Changed: changed}, nil
}
