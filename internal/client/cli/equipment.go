package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tallerkeeper/internal/client/models"
)

// readID takes the id from the first argument or asks for it.
func (a *App) readID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		s, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		raw = s
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// readEquipment asks for every descriptive field. Skipped fields are sent
// as null.
func (a *App) readEquipment() (*models.Equipment, error) {
	e := &models.Equipment{}

	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Owner first name", &e.NombreDueno},
		{"Owner last name", &e.ApellidoDueno},
		{"Model", &e.Modelo},
		{"Date received (YYYY-MM-DD)", &e.FechaIngreso},
		{"Phone", &e.Telefono},
		{"Fault description", &e.Fallo},
	}

	for _, f := range fields {
		v, err := getOptionalText(a.reader, f.prompt, a.out)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return e, nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.api.List(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No equipment recorded")
		return nil
	}

	fmt.Fprintln(a.out, "ID\tReceived\tModel\tOwner")
	for _, item := range list {
		fmt.Fprintln(a.out, item)
	}
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	id, err := a.readID(args, "Enter equipment id to show")
	if err != nil {
		return err
	}

	e, err := a.api.Get(ctx, id)
	if err != nil {
		return err
	}

	for _, line := range e.Details() {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	e, err := a.readEquipment()
	if err != nil {
		return err
	}

	created, err := a.api.Create(ctx, e)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Equipment added with id %d\n", created.ID)
	return nil
}

// Update replaces every field; fields left empty become null.
func (a *App) Update(ctx context.Context, args []string) error {
	id, err := a.readID(args, "Enter equipment id to update")
	if err != nil {
		return err
	}

	e, err := a.readEquipment()
	if err != nil {
		return err
	}
	e.ID = id

	if _, err := a.api.Update(ctx, e); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Equipment %d updated\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.readID(args, "Enter equipment id to delete")
	if err != nil {
		return err
	}

	if err := a.api.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Equipment %d deleted\n", id)
	return nil
}
