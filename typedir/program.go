package typedir

// Program is the typed, lambda-lifted IR the monomorphizer consumes:
// every Bind is top-level and closed over nothing but its own Args
// (§6, "Outbound to lambda-lifter/monomorphizer").
type Program []Bind
