package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tallerkeeper/internal/client/models"
)

type fakeAPI struct {
	list    []*models.Equipment
	get     *models.Equipment
	created *models.Equipment
	updated *models.Equipment

	gotID     int64
	deletedID int64
	regName   *string
	regEmail  string
	regPass   []byte
	passSeen  []byte
	loginUser string
	loginPass []byte
	err       error
}

func (f *fakeAPI) List(context.Context) ([]*models.Equipment, error) { return f.list, f.err }
func (f *fakeAPI) Get(_ context.Context, id int64) (*models.Equipment, error) {
	f.gotID = id
	return f.get, f.err
}
func (f *fakeAPI) Create(_ context.Context, e *models.Equipment) (*models.Equipment, error) {
	f.created = e
	if f.err != nil {
		return nil, f.err
	}
	out := *e
	out.ID = 1
	return &out, nil
}
func (f *fakeAPI) Update(_ context.Context, e *models.Equipment) (*models.Equipment, error) {
	f.updated = e
	return e, f.err
}
func (f *fakeAPI) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}
func (f *fakeAPI) Register(_ context.Context, userName *string, email string, password []byte) (int64, error) {
	f.regName, f.regEmail = userName, email
	f.regPass = append([]byte(nil), password...)
	f.passSeen = password
	return 5, f.err
}
func (f *fakeAPI) Login(_ context.Context, email string, password []byte) error {
	f.loginUser = email
	f.loginPass = append([]byte(nil), password...)
	f.passSeen = password
	return f.err
}

func newTestApp(api apiClient, input ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		api:    api,
		reader: bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:    out,
	}, out
}

// stubPassword makes getPassword return pw without touching the terminal.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
