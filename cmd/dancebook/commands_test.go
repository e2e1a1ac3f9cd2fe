package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dancebook/internal/booking"
	"dancebook/internal/signature"
	"dancebook/internal/storage/sqlite"
)

// seed registers one user with a booked first class and returns the db
// path and booking id.
func seed(t *testing.T) (string, string) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dancebook.db")
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	svc := booking.NewService(store, booking.MockProcessor{})
	sess, err := svc.Register(ctx, booking.Registration{
		Name: "Ada Lovelace", Email: "ada@example.com", Password: "secret1", Confirm: "secret1",
	})
	if err != nil {
		t.Fatal(err)
	}
	sig, _ := signature.Serialize([]signature.Stroke{{{X: 10, Y: 10}, {X: 50, Y: 40}}}, signature.DefaultOptions())
	b, err := svc.Book(ctx, sess, sig, booking.Card{
		Number: "4242 4242 4242 4242", Expiry: "12/30", CVV: "123",
		Holder: "Ada Lovelace", BillingEmail: "ada@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}
	return path, b.ID
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DANCEBOOK_PAYMENT_DELAY", "0s")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBookingsCommand(t *testing.T) {
	db, id := seed(t)
	out, err := execute(t, "bookings", "--db", db, "--email", "ADA@example.com")
	if err != nil {
		t.Fatalf("bookings: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Ada Lovelace <ada@example.com>",
		"active bookings: 1  first class free: false",
		"booked (" + id + ")",
		id,
		"confirmed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "bookings", "--db", db, "--email", "nobody@example.com"); err == nil {
		t.Fatal("unknown account listed")
	}
}

func TestExportWaiverCommand(t *testing.T) {
	db, id := seed(t)
	pdfPath := filepath.Join(t.TempDir(), "waiver.pdf")
	if out, err := execute(t, "export-waiver", "--db", db, id, pdfPath); err != nil {
		t.Fatalf("export-waiver: %v\n%s", err, out)
	}
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
}

func TestSignatureCommand(t *testing.T) {
	db, id := seed(t)
	out, err := execute(t, "signature", "--db", db, id)
	if err != nil {
		t.Fatalf("signature: %v\n%s", err, out)
	}
	if !strings.Contains(out, `d="M10,10 L50,40"`) {
		t.Fatalf("unexpected signature output: %s", out)
	}

	png := filepath.Join(t.TempDir(), "sig.png")
	if _, err := execute(t, "signature", "--db", db, "--png", png, id); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(png)
	if err != nil || !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("png not written: %v", err)
	}
}
