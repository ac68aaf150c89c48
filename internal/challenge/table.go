package challenge

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// SemiprimeEntry is one row of the challenge table: a semiprime N together
// with its declared bit size. Entries are immutable once loaded.
type SemiprimeEntry struct {
	BitSize int
	Value   *big.Int
}

type entryYAML struct {
	BitSize int    `yaml:"bitSize"`
	Value   string `yaml:"value"`
}

// LoadTable reads a YAML challenge table: a list of {bitSize, value} pairs
// with the value as a decimal string. The result is validated; a malformed
// table is a configuration error, not something to sweep anyway.
func LoadTable(r io.Reader) ([]SemiprimeEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var raw []entryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "malformed challenge table")
	}
	entries := make([]SemiprimeEntry, 0, len(raw))
	for i, e := range raw {
		value, ok := new(big.Int).SetString(e.Value, 10)
		if !ok {
			return nil, errors.Errorf("challenge table entry %d: %q is not a valid integer", i, e.Value)
		}
		entries = append(entries, SemiprimeEntry{BitSize: e.BitSize, Value: value})
	}
	if err := ValidateTable(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ValidateTable rejects tables on which a sweep would be doomed from the
// start: non-ascending bit sizes, bit sizes that disagree with the stored
// value, and degenerate moduli (even, too small, or prime).
func ValidateTable(entries []SemiprimeEntry) error {
	lastBits := 0
	for i, e := range entries {
		if e.Value == nil {
			return errors.Errorf("challenge table entry %d: missing value", i)
		}
		if e.BitSize <= lastBits {
			return errors.Errorf("challenge table entry %d: bit sizes must be strictly increasing, got %d after %d", i, e.BitSize, lastBits)
		}
		if e.Value.BitLen() != e.BitSize {
			return errors.Errorf("challenge table entry %d: %s is %d bits, declared %d", i, e.Value, e.Value.BitLen(), e.BitSize)
		}
		if e.Value.Cmp(big.NewInt(4)) < 0 {
			return errors.Errorf("challenge table entry %d: %s is too small to be a semiprime of two odd primes", i, e.Value)
		}
		if e.Value.Bit(0) == 0 {
			return errors.Errorf("challenge table entry %d: %s is even", i, e.Value)
		}
		if e.Value.ProbablyPrime(20) {
			return errors.Errorf("challenge table entry %d: %s is prime, not a semiprime", i, e.Value)
		}
		lastBits = e.BitSize
	}
	return nil
}

// DefaultTable returns the embedded challenge table, ordered by ascending
// bit size from 8 to 100 bits.
func DefaultTable() []SemiprimeEntry {
	entries := make([]SemiprimeEntry, 0, len(defaultSemiprimes))
	for _, e := range defaultSemiprimes {
		value, ok := new(big.Int).SetString(e.value, 10)
		if !ok {
			// The embedded table is fixed at compile time.
			panic("invalid embedded semiprime " + e.value)
		}
		entries = append(entries, SemiprimeEntry{BitSize: e.bitSize, Value: value})
	}
	return entries
}

var defaultSemiprimes = []struct {
	bitSize int
	value   string
}{
	{8, "143"},
	{10, "899"},
	{12, "3127"},
	{14, "11009"},
	{16, "47053"},
	{18, "167659"},
	{20, "744647"},
	{22, "3036893"},
	{24, "11426971"},
	{26, "58949987"},
	{28, "208241207"},
	{30, "857830637"},
	{32, "2776108693"},
	{34, "11455067797"},
	{36, "52734393667"},
	{38, "171913873883"},
	{40, "862463409547"},
	{42, "2830354423669"},
	{44, "12942106192073"},
	{46, "53454475917779"},
	{48, "255975740711783"},
	{50, "696252032788709"},
	{52, "3622511636491483"},
	{54, "15631190744806271"},
	{56, "51326462028714137"},
	{58, "217320198167105543"},
	{60, "827414216976034907"},
	{62, "3594396771839811733"},
	{64, "13489534701147995111"},
	{66, "48998116978431560767"},
	{68, "220295379750460962499"},
	{70, "757619317101213697553"},
	{72, "4239706985407101925109"},
	{74, "13081178794322790282667"},
	{76, "48581232636534199345531"},
	{78, "263180236071092621088443"},
	{80, "839063370715343025081359"},
	{82, "3145102596907521247788809"},
	{84, "13410747867593584234359179"},
	{86, "74963308816794035875414187"},
	{88, "196328049947816898123437813"},
	{90, "900212494943030042797046797"},
	{92, "3408479268382267351010110507"},
	{94, "13410207519922000104514406009"},
	{96, "56540697284955642837798912007"},
	{98, "212736089539904961817389577063"},
	{100, "793334180624272295351382130129"},
}
