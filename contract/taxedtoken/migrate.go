package taxedtoken

import (
	"encoding/json"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/fragwuerdig/cw20-taxed/core/types"
)

// ContractVersion is stamped on deploy and on every successful migration
const ContractVersion = "1.1.0"

// LegacyVersion is the only pre-tax deployment recognized as an upgrade
// source; anything between it and ContractVersion fails closed.
const LegacyVersion = "1.0.0"

// Migrate upgrades a deployed token in place. Only the master may call it.
// The stored version must be the legacy release or at least the running
// code's version, and never newer than it. A token deployed before the tax
// engine existed has no stored tax configuration; in that case the provided
// map, or the inert default, is installed. A token that already carries a
// tax map keeps it untouched.
func (cont *TokenContract) Migrate(cc *types.ContractContext, TaxMapJSON []byte) error {
	if cc.From() != cont.Master() {
		return errors.Wrap(ErrUnauthorized, "not token master")
	}

	stored := cont.Version(cc)
	if len(stored) == 0 {
		return errors.Wrap(ErrUnrecognizedMigration, "no deployed version")
	}
	from, err := semver.NewVersion(stored)
	if err != nil {
		return errors.Wrapf(ErrUnrecognizedMigration, "stored version %q", stored)
	}
	target := semver.MustParse(ContractVersion)
	if !from.Equal(semver.MustParse(LegacyVersion)) {
		if from.LessThan(target) {
			return errors.Wrapf(ErrUnrecognizedMigration, "no upgrade path from %v", from)
		}
		if target.LessThan(from) {
			return errors.Wrapf(ErrUnrecognizedMigration, "cannot downgrade %v to %v", from, target)
		}
	}

	if len(cc.ContractData([]byte{tagTaxMap})) == 0 {
		taxMap := DefaultTaxMap()
		if len(TaxMapJSON) > 0 {
			taxMap = &TaxMap{}
			if err := json.Unmarshal(TaxMapJSON, taxMap); err != nil {
				return errors.Wrap(ErrInvalidTaxMap, err.Error())
			}
		}
		if err := cont.storeTaxMap(cc, taxMap); err != nil {
			return err
		}
	}

	cc.SetContractData([]byte{tagVersion}, []byte(ContractVersion))
	return nil
}
