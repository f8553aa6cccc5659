package config

// DefaultVars are the deployment dependent values. The bridge contracts are
// deployed by the sandbox at start up, so their addresses have no usable
// default and must be provided, e.g. with AGGSANDBOX_L1BridgeAddr.
const DefaultVars = `
L1URL = "http://localhost:8545"
L2URL = "http://localhost:8546"
L3URL = "http://localhost:8547"

L1ChainID = 1
L2ChainID = 1101
L3ChainID = 1102

# aggkit serving L1 and the first rollup
BridgeServiceURL = "http://localhost:5577"
# aggkit serving the second rollup
L3BridgeServiceURL = "http://localhost:5578"

L1BridgeAddr = "0x0000000000000000000000000000000000000000"
L2BridgeAddr = "0x0000000000000000000000000000000000000000"
L3BridgeAddr = "0x0000000000000000000000000000000000000000"
L1BridgeExtensionAddr = "0x0000000000000000000000000000000000000000"
L2BridgeExtensionAddr = "0x0000000000000000000000000000000000000000"
L3BridgeExtensionAddr = "0x0000000000000000000000000000000000000000"
L1GERManagerAddr = "0x0000000000000000000000000000000000000000"
L2GERManagerAddr = "0x0000000000000000000000000000000000000000"
L3GERManagerAddr = "0x0000000000000000000000000000000000000000"

# claim signature of each bridge, "sandbox" or "proofs"
L1ClaimABI = "sandbox"
L2ClaimABI = "sandbox"
L3ClaimABI = "sandbox"

# hex key signing the claims, Claimer.Signer.Keystore can be used instead
PrivateKey = ""
`

// DefaultValues is the configuration of the local sandbox
const DefaultValues = `
[Log]
Environment = "development"
Level = "info"
Outputs = ["stderr"]

[[Networks]]
Name = "L1"
NetworkID = 0
ChainID = {{L1ChainID}}
RPCURL = "{{L1URL}}"
BridgeAddr = "{{L1BridgeAddr}}"
BridgeExtensionAddr = "{{L1BridgeExtensionAddr}}"
GERManagerAddr = "{{L1GERManagerAddr}}"
ClaimABI = "{{L1ClaimABI}}"
BridgeServiceURL = "{{BridgeServiceURL}}"
RequestsPerSecond = 0
Burst = 0

[[Networks]]
Name = "L2"
NetworkID = 1
ChainID = {{L2ChainID}}
RPCURL = "{{L2URL}}"
BridgeAddr = "{{L2BridgeAddr}}"
BridgeExtensionAddr = "{{L2BridgeExtensionAddr}}"
GERManagerAddr = "{{L2GERManagerAddr}}"
ClaimABI = "{{L2ClaimABI}}"
BridgeServiceURL = "{{BridgeServiceURL}}"
RequestsPerSecond = 0
Burst = 0

[[Networks]]
Name = "L3"
NetworkID = 2
ChainID = {{L3ChainID}}
RPCURL = "{{L3URL}}"
BridgeAddr = "{{L3BridgeAddr}}"
BridgeExtensionAddr = "{{L3BridgeExtensionAddr}}"
GERManagerAddr = "{{L3GERManagerAddr}}"
ClaimABI = "{{L3ClaimABI}}"
BridgeServiceURL = "{{L3BridgeServiceURL}}"
RequestsPerSecond = 0
Burst = 0

[BridgeService]
API = "rest"
RequestTimeout = "30s"
RetryMax = 3
RetryWaitMin = "500ms"
RetryWaitMax = "5s"
PageSize = 100

[Resolver]
BridgesCacheTTL = "5s"
ProofCacheTTL = "30s"
MaxPages = 10
PageSize = 100
CheckGERInjected = false
	[Resolver.Retry]
	MaxAttempts = 20
	InitialInterval = "2s"
	MaxInterval = "10s"
	Multiplier = 1.5

[Claimer]
GlobalIndexLayout = "bridgev2"
GasLimit = 0
DefaultGasLimit = 3000000
GasOffset = 0
GasPrice = ""
ConfirmationTimeout = "60s"
ReceiptPollInterval = "1s"
GasPriceBumpPercent = 10
MaxReplacements = 3
	[Claimer.Retry]
	MaxAttempts = 10
	InitialInterval = "2s"
	MaxInterval = "10s"
	Multiplier = 1.5
	[Claimer.Signer]
	PrivateKey = "{{PrivateKey}}"
		[Claimer.Signer.Keystore]
		Path = ""
		Password = ""

[Journal]
DBPath = ""

[Orchestrator]
DepositTimeout = "0s"
ProofTimeout = "0s"
MaxConcurrentBundles = 4
SkipPreflight = false
FillTokenMetadata = true
`
