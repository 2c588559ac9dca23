package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/fragwuerdig/cw20-taxed/cmd/config"
	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/contract/taxedtoken"
	"github.com/fragwuerdig/cw20-taxed/core/types"
	"github.com/fragwuerdig/cw20-taxed/service/apiserver"
)

// Config is a configuration for the cmd
type Config struct {
	Master         string
	Name           string
	Symbol         string
	InitialSupply  map[string]string
	Minter         string
	MintCap        string
	TaxMapFile     string
	WhaleInfoFile  string
	APIBindAddress string
}

func main() {
	cfgPath := flag.String("config", "./config.toml", "path of the config file")
	flag.Parse()

	var cfg Config
	if err := config.LoadFile(*cfgPath, &cfg); err != nil {
		panic(err)
	}
	if len(cfg.APIBindAddress) == 0 {
		cfg.APIBindAddress = ":58001"
	}

	master, err := common.ParseAddress(cfg.Master)
	if err != nil {
		panic(err)
	}

	contArgs := &taxedtoken.TokenContractConstruction{
		Name:   cfg.Name,
		Symbol: cfg.Symbol,
	}
	for addrStr, amtStr := range cfg.InitialSupply {
		addr, err := common.ParseAddress(addrStr)
		if err != nil {
			panic(err)
		}
		am, err := amount.ParseAmount(amtStr)
		if err != nil {
			panic(err)
		}
		contArgs.InitialBalances = append(contArgs.InitialBalances, taxedtoken.InitialBalance{Address: addr, Amount: am})
	}
	if len(cfg.Minter) > 0 {
		minter, err := common.ParseAddress(cfg.Minter)
		if err != nil {
			panic(err)
		}
		contArgs.Minter = minter
	}
	if len(cfg.MintCap) > 0 {
		mintCap, err := amount.ParseAmount(cfg.MintCap)
		if err != nil {
			panic(err)
		}
		contArgs.MintCap = mintCap
	}
	if len(cfg.TaxMapFile) > 0 {
		bs, err := os.ReadFile(cfg.TaxMapFile)
		if err != nil {
			panic(err)
		}
		contArgs.TaxMapJSON = bs
	}
	if len(cfg.WhaleInfoFile) > 0 {
		bs, err := os.ReadFile(cfg.WhaleInfoFile)
		if err != nil {
			panic(err)
		}
		contArgs.WhaleInfoJSON = bs
	}

	classID, err := types.RegisterContractType(&taxedtoken.TokenContract{})
	if err != nil {
		panic(err)
	}

	ctx := types.NewEmptyContext()
	bf := &bytes.Buffer{}
	if _, err := contArgs.WriteTo(bf); err != nil {
		panic(err)
	}
	cont, err := ctx.DeployContract(master, classID, bf.Bytes())
	if err != nil {
		panic(err)
	}
	log.Println("token deployed at", cont.Address().String())

	as := apiserver.NewAPIServer()
	if _, err := apiserver.SetupTokenAPI(as, ctx, cont.Address()); err != nil {
		panic(err)
	}
	log.Println("api server listening on", cfg.APIBindAddress)
	if err := as.Run(cfg.APIBindAddress); err != nil {
		panic(err)
	}
}
