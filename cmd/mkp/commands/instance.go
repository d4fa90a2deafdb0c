// SPDX-License-Identifier: MIT
package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/lpbound"
	"github.com/katalvlaran/knapsack/orlib"
)

var errNoInstance = errors.New("--instance is required")

func addInstanceFlags(fs *pflag.FlagSet) {
	fs.String("instance", "", "mknapcb instance file")
	fs.Int("index", 0, "0-based instance index within the file")
	fs.String("lp", "", "LP-optimum table (m.n-NN value lines)")
	fs.Bool("lp-bound", false, "compute the LP-relaxation bound when no table entry exists")
}

// loadInstance reads the selected instance and attaches an LP optimum from
// the table, or from the simplex bound when requested.
func (a *app) loadInstance() (*instance.Instance, error) {
	path := a.v.GetString("instance")
	if path == "" {
		return nil, errNoInstance
	}
	inst, err := orlib.LoadInstance(path, a.v.GetInt("index"))
	if err != nil {
		return nil, err
	}
	log := a.log.With(slog.String("instance", path), slog.Int("index", inst.Number()))

	if table := a.v.GetString("lp"); table != "" {
		t, err := orlib.LoadLPTable(table)
		if err != nil {
			return nil, err
		}
		var ok bool
		if inst, ok, err = orlib.AttachLPOptimum(inst, t); err != nil {
			return nil, err
		}
		if !ok {
			log.Warn("no LP table entry for instance",
				slog.Int("resources", inst.ResourceCount()), slog.Int("items", inst.ItemCount()))
		}
	}
	if _, has := inst.LPOptimum(); !has && a.v.GetBool("lp-bound") {
		if inst, err = lpbound.Attach(inst); err != nil {
			return nil, err
		}
		log.Debug("LP bound computed")
	}
	log.Debug("instance loaded", slog.Int("items", inst.ItemCount()), slog.Int("resources", inst.ResourceCount()))

	return inst, nil
}
