package calima

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// load reads a morphology database file. The format is line oriented:
// "###NAME###" lines open a section, "#" lines are comments, and blank
// lines are skipped. Sections:
//
//	###DEFINES###    DEFINE <feature> [value ...]   (no values = open domain)
//	###DEFAULTS###   DEFAULT pos:<pos> key:value ...
//	###PREFIXES###   <surface>\t<category>\t<key:value ...>
//	###STEMS###      same layout as PREFIXES
//	###SUFFIXES###   same layout as PREFIXES
//	###TABLE AB###   <prefix category> <stem category>
//	###TABLE BC###   <stem category> <suffix category>
//	###TABLE AC###   <prefix category> <suffix category>
//
// Unknown sections are skipped so newer databases stay loadable.
func (db *Database) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()

		if strings.HasPrefix(line, "###") && strings.HasSuffix(line, "###") {
			section = strings.Trim(line, "#")
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		switch section {
		case "DEFINES":
			err = db.parseDefine(line)
		case "DEFAULTS":
			err = db.parseDefault(line)
		case "PREFIXES":
			err = db.parseMorpheme(line, db.addPrefix)
		case "STEMS":
			err = db.parseMorpheme(line, db.addStem)
		case "SUFFIXES":
			err = db.parseMorpheme(line, db.addSuffix)
		case "TABLE AB":
			err = parseCompat(line, db.compatAB)
		case "TABLE BC":
			err = parseCompat(line, db.compatBC)
		case "TABLE AC":
			err = parseCompat(line, db.compatAC)
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
	}
	return sc.Err()
}

// parseDefine handles "DEFINE <feature> [value ...]".
func (db *Database) parseDefine(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "DEFINE" {
		return fmt.Errorf("malformed DEFINE line %q", line)
	}
	feat := fields[1]
	if len(fields) == 2 {
		// No values: the feature's domain is open.
		db.defines[feat] = nil
		return nil
	}
	db.defines[feat] = append(db.defines[feat], fields[2:]...)
	return nil
}

// parseDefault handles "DEFAULT pos:<pos> key:value ...".
func (db *Database) parseDefault(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "DEFAULT" {
		return fmt.Errorf("malformed DEFAULT line %q", line)
	}
	feats, err := parseFeats(fields[1:])
	if err != nil {
		return err
	}
	pos, ok := feats[FeatPOS]
	if !ok {
		return fmt.Errorf("DEFAULT line without pos: %q", line)
	}
	db.defaults[pos] = feats
	return nil
}

// parseMorpheme handles "<surface>\t<category>\t<key:value ...>" lines
// from the PREFIXES, STEMS and SUFFIXES sections. The surface field may
// be empty for null affixes.
func (db *Database) parseMorpheme(line string, add func(*morpheme)) error {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 {
		return fmt.Errorf("malformed morpheme line %q", line)
	}
	feats, err := parseFeats(strings.Fields(parts[2]))
	if err != nil {
		return err
	}
	add(&morpheme{surface: parts[0], category: parts[1], feats: feats})
	return nil
}

// parseFeats parses whitespace-separated "key:value" fields. Values may
// be empty and may themselves contain ':'.
func parseFeats(fields []string) (Analysis, error) {
	feats := make(Analysis, len(fields))
	for _, f := range fields {
		i := strings.Index(f, ":")
		if i <= 0 {
			return nil, fmt.Errorf("malformed feature %q", f)
		}
		feats[f[:i]] = f[i+1:]
	}
	return feats, nil
}

// parseCompat handles two-field category pair lines.
func parseCompat(line string, table map[string]map[string]bool) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("malformed compatibility line %q", line)
	}
	if table[fields[0]] == nil {
		table[fields[0]] = make(map[string]bool)
	}
	table[fields[0]][fields[1]] = true
	return nil
}
