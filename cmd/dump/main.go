package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type contractDump struct {
	Name    string        `json:"name"`
	Hash    string        `json:"hash"`
	Block   uint32        `json:"block"`
	Storage []storageItem `json:"storage"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contracts := flag.String("contracts", "", "Comma-separated LE script hashes of the deployed contracts")
	outDir := flag.String("out", "testdata", "Directory to write storage dumps to")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contracts == "":
		log.Fatal("missing contract hashes")
	}

	err := os.MkdirAll(*outDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create output dir: %w", err))
	}

	b, err := newRemoteBlockChain(*neoRPCEndpoint)
	if err != nil {
		log.Fatal(fmt.Errorf("init remote blockchain: %w", err))
	}

	defer b.close()

	for _, hs := range strings.Split(*contracts, ",") {
		h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(hs, "0x"))
		if err != nil {
			log.Fatal(fmt.Errorf("decode contract hash '%s': %w", hs, err))
		}

		err = dumpContract(b, h, *outDir)
		if err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("contract storage is successfully dumped to '%s/'\n", *outDir)
}

func dumpContract(from *remoteBlockchain, contract util.Uint160, outDir string) error {
	st, err := from.rpc.GetContractStateByHash(contract)
	if err != nil {
		return fmt.Errorf("get state of contract '%s': %w", contract.StringLE(), err)
	}

	log.Printf("Processing contract '%s'...\n", st.Manifest.Name)

	d := contractDump{
		Name:  st.Manifest.Name,
		Hash:  contract.StringLE(),
		Block: from.currentBlock,
	}

	err = from.iterateContractStorage(contract, func(key, value []byte) error {
		d.Storage = append(d.Storage, storageItem{
			Key:   base64.StdEncoding.EncodeToString(key),
			Value: base64.StdEncoding.EncodeToString(value),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate '%s' contract storage: %w", st.Manifest.Name, err)
	}

	data, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		return fmt.Errorf("encode '%s' dump: %w", st.Manifest.Name, err)
	}

	err = os.WriteFile(filepath.Join(outDir, st.Manifest.Name+".json"), data, 0600)
	if err != nil {
		return fmt.Errorf("write '%s' dump: %w", st.Manifest.Name, err)
	}

	return nil
}
