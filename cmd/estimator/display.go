package main

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/display"

	"github.com/multiversx/mx-chain-params-estimator-go/cmd/estimator/hostParameters"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

func createHostInfoTable(hi *hostParameters.HostInfo) (string, error) {
	header := []string{"Host parameter", "Value"}
	lines := make([]*display.LineData, 0)
	for _, line := range hi.ToStrings() {
		lines = append(lines, display.NewLineData(false, line))
	}

	return display.CreateTableString(header, lines)
}

func createFeesTable(fees params.RuntimeFeesConfig) (string, error) {
	header := []string{"Fee", "Send same account", "Send other account", "Execution"}
	lines := make([]*display.LineData, 0)
	for _, entry := range fees.Entries() {
		lines = append(lines, display.NewLineData(false, []string{
			entry.Path,
			fmt.Sprintf("%d", entry.Fee.SendSameAccount),
			fmt.Sprintf("%d", entry.Fee.SendDifferentAccount),
			fmt.Sprintf("%d", entry.Fee.Execution),
		}))
	}

	return display.CreateTableString(header, lines)
}

func createExtCostsTable(vm params.VMConfig) (string, error) {
	header := []string{"Ext cost", "Gas"}
	lines := make([]*display.LineData, 0)
	for _, entry := range vm.ExtCosts.Entries() {
		lines = append(lines, display.NewLineData(false, []string{entry.Name, fmt.Sprintf("%d", entry.Value)}))
	}
	if len(lines) > 0 {
		lines[len(lines)-1].HorizontalRuleAfter = true
	}
	lines = append(lines, display.NewLineData(false, []string{"grow_mem_cost", fmt.Sprintf("%d", vm.GrowMemCost)}))
	lines = append(lines, display.NewLineData(false, []string{"regular_op_cost", fmt.Sprintf("%d", vm.RegularOpCost)}))

	return display.CreateTableString(header, lines)
}

func createMeasurementsTable(measurements *stats.Measurements) (string, error) {
	header := []string{"Metric", "Samples", "Mean", "Std dev", "Min", "Max"}
	lines := make([]*display.LineData, 0)
	for _, m := range measurements.Metrics() {
		summary, err := measurements.Summary(m)
		if err != nil {
			return "", err
		}

		lines = append(lines, display.NewLineData(false, []string{
			m.String(),
			fmt.Sprintf("%d", summary.Samples),
			fmt.Sprintf("%.2f", summary.Mean),
			fmt.Sprintf("%.2f", summary.StdDev),
			fmt.Sprintf("%.2f", summary.Min),
			fmt.Sprintf("%.2f", summary.Max),
		}))
	}

	return display.CreateTableString(header, lines)
}
