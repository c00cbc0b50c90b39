// command hwm grinds Nostr keypairs whose public keys carry
// age/sex/location metadata in their leading bits, and decodes the
// metadata back out of existing keys.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kortschak/qr"
	flag "github.com/spf13/pflag"

	"github.com/telamon/hwm-asl/asl"
	"github.com/telamon/hwm-asl/geoflag"
	"github.com/telamon/hwm-asl/keys"
	"github.com/telamon/hwm-asl/nip19"
)

// ageBands and sexLabels turn the 2-bit wire codes into text. The
// codes themselves are opaque to the codec.
var ageBands = [4]string{"<16", "16-24", "25-40", "40+"}

var sexLabels = [4]string{"female", "male", "nonbinary", "other"}

// batchSize bounds how many keys a single Roll call grinds, so the
// interrupt check between batches stays responsive.
const batchSize = 4096

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "grind":
		err = cmdGrind(os.Args[2:])
	case "decode":
		err = cmdDecode(os.Args[2:])
	case "flag":
		err = cmdFlag(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  hwm grind -l GEOHASH [-a AGE] [-s SEX] [flags]
  hwm decode KEY [flags]
  hwm flag GEOHASH [flags]

KEY is a 64-character hex public key or an npub entity.
`)
}

func cmdGrind(args []string) error {
	fs := flag.NewFlagSet("grind", flag.ExitOnError)
	location := fs.StringP("location", "l", "", "geohash of your whereabouts")
	age := fs.IntP("age", "a", 0, "age code 0..3 ("+strings.Join(ageBands[:], ", ")+")")
	sex := fs.IntP("sex", "s", 0, "sex code 0..3 ("+strings.Join(sexLabels[:], ", ")+")")
	geobits := fs.Int("geobits", asl.DefaultGeoBits, "location precision in bits")
	maxTries := fs.Int("max-tries", asl.DefaultMaxTries, "give up after this many keys")
	qrOut := fs.String("qr", "", "write the npub as a QR code PNG to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *location == "" {
		return fmt.Errorf("grind: -l GEOHASH is required")
	}

	rec := asl.Record{Age: *age, Sex: *sex, Location: *location}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	src := keys.Source{}
	privHex := ""
	for tried := 0; tried < *maxTries; tried += batchSize {
		batch := batchSize
		if left := *maxTries - tried; left < batch {
			batch = left
		}
		found, ok, err := asl.Roll(src, rec, *geobits, batch)
		if err != nil {
			return err
		}
		if ok {
			privHex = found
			break
		}
		select {
		case <-sig:
			return fmt.Errorf("grind: interrupted after ~%d keys", tried+batch)
		default:
		}
	}
	if privHex == "" {
		return fmt.Errorf("grind: no match within %d keys, try fewer geobits", *maxTries)
	}

	priv, err := keys.ParseHex(privHex)
	if err != nil {
		return err
	}
	pub, err := keys.Derive(priv)
	if err != nil {
		return err
	}
	nsec, err := nip19.EncodeSecretKey(priv[:])
	if err != nil {
		return err
	}
	npub, err := nip19.EncodePublicKey(pub[:])
	if err != nil {
		return err
	}
	fmt.Printf("priv: %s\nnsec: %s\nnpub: %s\n", privHex, nsec, npub)
	if *qrOut != "" {
		if err := writeQR(npub, *qrOut); err != nil {
			return err
		}
	}
	return printRecord(pub[:], *geobits)
}

func cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	geobits := fs.Int("geobits", asl.DefaultGeoBits, "location precision in bits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decode: expected exactly one key argument")
	}
	arg := fs.Arg(0)
	var pub []byte
	if strings.HasPrefix(arg, nip19.HRPPub) {
		key, err := nip19.DecodePublicKey(arg)
		if err != nil {
			return err
		}
		pub = key
	} else {
		key, err := keys.ParseHex(arg)
		if err != nil {
			return err
		}
		pub = key[:]
	}
	return printRecord(pub, *geobits)
}

func cmdFlag(args []string) error {
	fs := flag.NewFlagSet("flag", flag.ExitOnError)
	geobits := fs.Int("geobits", asl.DefaultGeoBits, "location precision in bits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("flag: expected exactly one geohash argument")
	}
	f, err := geoflag.Of(fs.Arg(0), *geobits)
	if err != nil {
		return err
	}
	fmt.Println(f)
	return nil
}

func printRecord(pub []byte, geobits int) error {
	rec, err := asl.Decode(pub, geobits)
	if err != nil {
		return err
	}
	f := ""
	if rec.Location != "" {
		if f, err = geoflag.Of(rec.Location, geobits); err != nil {
			return err
		}
	}
	fmt.Printf("age: %s\nsex: %s\nlocation: %s %s\n", ageBands[rec.Age], sexLabels[rec.Sex], rec.Location, f)
	return nil
}

func writeQR(text, path string) error {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return err
	}
	return os.WriteFile(path, code.PNG(), 0o644)
}
