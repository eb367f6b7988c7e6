package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

// ScriptDecoder classifies and disassembles scripts using params of one network.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for extracting addresses using params of the provided network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// DecodeInput disassembles an unlocking script.
func (d *ScriptDecoder) DecodeInput(scriptHex string) (model.InputScript, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return model.InputScript{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	if len(script) == 0 {
		return model.InputScript{}, nil
	}
	asm, err := txscript.DisasmString(script)
	if err != nil {
		return model.InputScript{Asm: asm}, fmt.Errorf("disassemble script sig: %w", err)
	}
	return model.InputScript{Asm: asm}, nil
}

// DecodeOutput classifies a locking script and extracts its addresses.
func (d *ScriptDecoder) DecodeOutput(scriptHex string) (model.OutputScript, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return model.OutputScript{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	result := model.OutputScript{Type: txscript.GetScriptClass(script).String()}
	asm, err := txscript.DisasmString(script)
	result.Asm = asm
	if err != nil {
		return result, fmt.Errorf("disassemble script pubkey: %w", err)
	}

	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return result, fmt.Errorf("extract addresses: %w", err)
	}
	if len(addrs) > 0 {
		result.Addresses = make([]string, 0, len(addrs))
		for _, addr := range addrs {
			result.Addresses = append(result.Addresses, addr.EncodeAddress())
		}
	}
	return result, nil
}

// Enrich fills the script details of decoded. Scripts that fail to decode keep
// whatever partial result was produced; the first error is returned.
func (d *ScriptDecoder) Enrich(decoded *model.DecodedTransaction) error {
	var firstErr error
	tx := decoded.Transaction

	decoded.InputScripts = make([]model.InputScript, len(tx.Inputs))
	for i, input := range tx.Inputs {
		script, err := d.DecodeInput(input.ScriptSig)
		decoded.InputScripts[i] = script
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("input %d: %w", i, err)
		}
	}

	decoded.OutputScripts = make([]model.OutputScript, len(tx.Outputs))
	for i, output := range tx.Outputs {
		script, err := d.DecodeOutput(output.ScriptPubKey)
		decoded.OutputScripts[i] = script
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("output %d: %w", i, err)
		}
	}
	return firstErr
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
