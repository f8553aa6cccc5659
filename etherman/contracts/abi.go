package contracts

// PolygonZkEVMBridgeV2ABI is the subset of the bridge ABI used to claim deposits,
// including the custom errors a claim can revert with
const PolygonZkEVMBridgeV2ABI = `[{"type":"function","name":"claimAsset","stateMutability":"nonpayable","inputs":[{"name":"smtProofLocalExitRoot","type":"bytes32[32]","internalType":"bytes32[32]"},{"name":"smtProofRollupExitRoot","type":"bytes32[32]","internalType":"bytes32[32]"},{"name":"globalIndex","type":"uint256","internalType":"uint256"},{"name":"mainnetExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"rollupExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originTokenAddress","type":"address","internalType":"address"},{"name":"destinationNetwork","type":"uint32","internalType":"uint32"},{"name":"destinationAddress","type":"address","internalType":"address"},{"name":"amount","type":"uint256","internalType":"uint256"},{"name":"metadata","type":"bytes","internalType":"bytes"}],"outputs":[]},{"type":"function","name":"claimMessage","stateMutability":"nonpayable","inputs":[{"name":"smtProofLocalExitRoot","type":"bytes32[32]","internalType":"bytes32[32]"},{"name":"smtProofRollupExitRoot","type":"bytes32[32]","internalType":"bytes32[32]"},{"name":"globalIndex","type":"uint256","internalType":"uint256"},{"name":"mainnetExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"rollupExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originAddress","type":"address","internalType":"address"},{"name":"destinationNetwork","type":"uint32","internalType":"uint32"},{"name":"destinationAddress","type":"address","internalType":"address"},{"name":"amount","type":"uint256","internalType":"uint256"},{"name":"metadata","type":"bytes","internalType":"bytes"}],"outputs":[]},{"type":"function","name":"isClaimed","stateMutability":"view","inputs":[{"name":"leafIndex","type":"uint32","internalType":"uint32"},{"name":"sourceBridgeNetwork","type":"uint32","internalType":"uint32"}],"outputs":[{"name":"","type":"bool","internalType":"bool"}]},{"type":"function","name":"getTokenWrappedAddress","stateMutability":"view","inputs":[{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originTokenAddress","type":"address","internalType":"address"}],"outputs":[{"name":"","type":"address","internalType":"address"}]},{"type":"function","name":"precalculatedWrapperAddress","stateMutability":"view","inputs":[{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originTokenAddress","type":"address","internalType":"address"},{"name":"name","type":"string","internalType":"string"},{"name":"symbol","type":"string","internalType":"string"},{"name":"decimals","type":"uint8","internalType":"uint8"}],"outputs":[{"name":"","type":"address","internalType":"address"}]},{"type":"function","name":"wrappedTokenToTokenInfo","stateMutability":"view","inputs":[{"name":"","type":"address","internalType":"address"}],"outputs":[{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originTokenAddress","type":"address","internalType":"address"}]},{"type":"function","name":"gasTokenAddress","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address","internalType":"address"}]},{"type":"function","name":"gasTokenNetwork","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint32","internalType":"uint32"}]},{"type":"function","name":"networkID","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint32","internalType":"uint32"}]},{"type":"error","name":"AlreadyClaimed","inputs":[]},{"type":"error","name":"AmountDoesNotMatchMsgValue","inputs":[]},{"type":"error","name":"DestinationNetworkInvalid","inputs":[]},{"type":"error","name":"EtherTransferFailed","inputs":[]},{"type":"error","name":"FailedTokenWrappedDeployment","inputs":[]},{"type":"error","name":"GasTokenNetworkMustBeZeroOnEther","inputs":[]},{"type":"error","name":"GlobalExitRootInvalid","inputs":[]},{"type":"error","name":"InvalidSmtProof","inputs":[]},{"type":"error","name":"MessageFailed","inputs":[]},{"type":"error","name":"MsgValueNotZero","inputs":[]},{"type":"error","name":"NativeTokenIsEther","inputs":[]},{"type":"error","name":"NoValueInMessagesOnGasTokenNetworks","inputs":[]},{"type":"error","name":"NotValidAmount","inputs":[]},{"type":"error","name":"NotValidOwner","inputs":[]},{"type":"error","name":"NotValidSignature","inputs":[]},{"type":"error","name":"NotValidSpender","inputs":[]},{"type":"error","name":"OnlyEmergencyState","inputs":[]},{"type":"error","name":"OnlyNotEmergencyState","inputs":[]},{"type":"error","name":"OnlyRollupManager","inputs":[]},{"type":"error","name":"ERC20InsufficientAllowance","inputs":[{"name":"spender","type":"address","internalType":"address"},{"name":"allowance","type":"uint256","internalType":"uint256"},{"name":"needed","type":"uint256","internalType":"uint256"}]},{"type":"error","name":"ERC20InsufficientBalance","inputs":[{"name":"sender","type":"address","internalType":"address"},{"name":"balance","type":"uint256","internalType":"uint256"},{"name":"needed","type":"uint256","internalType":"uint256"}]}]`

// SandboxClaimABI is the claim entry point of the bridge deployed by the sandbox.
// It takes no SMT proofs, the leaf is checked against the exit roots alone.
const SandboxClaimABI = `[{"type":"function","name":"claimAsset","stateMutability":"nonpayable","inputs":[{"name":"globalIndex","type":"uint256","internalType":"uint256"},{"name":"mainnetExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"rollupExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originTokenAddress","type":"address","internalType":"address"},{"name":"destinationNetwork","type":"uint32","internalType":"uint32"},{"name":"destinationAddress","type":"address","internalType":"address"},{"name":"amount","type":"uint256","internalType":"uint256"},{"name":"metadata","type":"bytes","internalType":"bytes"}],"outputs":[]},{"type":"function","name":"claimMessage","stateMutability":"nonpayable","inputs":[{"name":"globalIndex","type":"uint256","internalType":"uint256"},{"name":"mainnetExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"rollupExitRoot","type":"bytes32","internalType":"bytes32"},{"name":"originNetwork","type":"uint32","internalType":"uint32"},{"name":"originAddress","type":"address","internalType":"address"},{"name":"destinationNetwork","type":"uint32","internalType":"uint32"},{"name":"destinationAddress","type":"address","internalType":"address"},{"name":"amount","type":"uint256","internalType":"uint256"},{"name":"metadata","type":"bytes","internalType":"bytes"}],"outputs":[]}]`

// GlobalExitRootManagerABI is shared by the L1 PolygonZkEVMGlobalExitRootV2 and the
// L2 global exit root managers
const GlobalExitRootManagerABI = `[{"type":"function","name":"globalExitRootMap","stateMutability":"view","inputs":[{"name":"","type":"bytes32","internalType":"bytes32"}],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]}]`

// ERC20MetadataABI is the optional metadata extension of ERC20
const ERC20MetadataABI = `[{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string","internalType":"string"}]},{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string","internalType":"string"}]},{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8","internalType":"uint8"}]}]`
