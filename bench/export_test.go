package bench

// VerifyRunners exposes verify to the black-box tests.
var VerifyRunners = verify
