package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/carbocation/bitcursor"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("filename", "", "Filename of the file to dump at bit granularity")
	compression := flag.String("compression", "none", "Compression of the file contents: none, zlib, or zstd")
	limit := flag.Int("limit", 64, "Maximum number of bytes to dump")
	flag.Parse()

	if *path == "" {
		log.Fatalln("-filename is required")
	}

	var comp bitcursor.Compression
	switch *compression {
	case "none":
		comp = bitcursor.CompressionDisabled
	case "zlib":
		comp = bitcursor.CompressionZLIB
	case "zstd":
		comp = bitcursor.CompressionZStandard
	default:
		log.Fatalf("Unknown compression %q\n", *compression)
	}

	c, err := bitcursor.OpenCompressed(*path, comp)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer c.Close()

	i := 0
	for ; i < *limit && !c.IsAtEnd(); i++ {
		b, err := c.ReadByte()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		fmt.Printf("%04d: %08b 0x%02X\n", i, b, b)
	}

	log.Println("Dumped", i, "bytes")
}
