package storages

// Conf - file storage locations for render assets.
type Conf struct {
	FontFile        string `json:"font_file"`
	BoldFontFile    string `json:"bold_font_file"`
	HTMLTemplateDir string `json:"html_template_dir"`
}
