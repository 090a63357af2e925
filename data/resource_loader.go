package data

import (
	"fmt"
	_ "image/png"
	"io"
	"io/fs"
	"path"

	"hello-ebiten/core"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"
	"golang.org/x/image/font/basicfont"
)

// ImageSource は画像IDから画像を読み込みます。
type ImageSource interface {
	LoadImage(id resource.ImageID) (core.Image, error)
}

// ResourceLoader は resource_dir 配下のアセットを ebitengine-resource 経由で読み込みます。
// ebitengine-resource は読み込み失敗時に panic するため、ここでエラーに変換します。
type ResourceLoader struct {
	fsys   fs.FS
	loader *resource.Loader
	images map[resource.ImageID]resource.ImageInfo
	fonts  map[resource.FontID]resource.FontInfo
}

// NewResourceLoader はアセット設定からレジストリを構築したローダーを返します。
// fsys には通常 os.DirFS(cfg.ResourceDir) を渡します。
func NewResourceLoader(fsys fs.FS, assets AssetConfig) *ResourceLoader {
	loader := resource.NewLoader(nil) // 音声は扱わない
	loader.OpenAssetFunc = func(p string) io.ReadCloser {
		f, err := fsys.Open(p)
		if err != nil {
			panic(err)
		}
		return f
	}

	l := &ResourceLoader{
		fsys:   fsys,
		loader: loader,
		images: map[resource.ImageID]resource.ImageInfo{
			ImagePlayer: {Path: assetPath(assets.Player)},
		},
		fonts: map[resource.FontID]resource.FontInfo{},
	}
	if assets.Font != "" {
		l.fonts[FontLabel] = resource.FontInfo{Path: assetPath(assets.Font), Size: assets.FontSize}
	}
	loader.ImageRegistry.Assign(l.images)
	loader.FontRegistry.Assign(l.fonts)
	return l
}

// assetPath は設定値を fs.FS 用のスラッシュ区切りの相対パスに揃えます。
func assetPath(p string) string {
	return path.Clean("/" + p)[1:]
}

// LoadImage は登録済みの画像を読み込みます。ファイルが存在しない場合は
// fs.ErrNotExist をラップしたエラーを返します。
func (l *ResourceLoader) LoadImage(id resource.ImageID) (img core.Image, err error) {
	info, ok := l.images[id]
	if !ok {
		return nil, fmt.Errorf("画像ID %d は登録されていません", id)
	}
	if err := l.checkFile(info.Path); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("画像 %s の読み込みに失敗しました: %v", info.Path, r)
		}
	}()
	res := l.loader.LoadImage(id)
	if res.Data == nil {
		return nil, fmt.Errorf("画像 %s のデコード結果が空です", info.Path)
	}
	log.Debug("画像を読み込みました", "path", info.Path, "size", res.Data.Bounds().Size())
	return res.Data, nil
}

// LoadFontFace はラベル用のフォントを返します。
// フォントが設定されていない場合は組み込みのビットマップフォントを使います。
func (l *ResourceLoader) LoadFontFace() (face text.Face, err error) {
	info, ok := l.fonts[FontLabel]
	if !ok {
		return text.NewGoXFace(basicfont.Face7x13), nil
	}
	if err := l.checkFile(info.Path); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			face = nil
			err = fmt.Errorf("フォント %s の読み込みに失敗しました: %v", info.Path, r)
		}
	}()
	f := l.loader.LoadFont(FontLabel)
	log.Debug("フォントを読み込みました", "path", info.Path, "size", info.Size)
	return text.NewGoXFace(f.Face), nil
}

func (l *ResourceLoader) checkFile(p string) error {
	if !fs.ValidPath(p) {
		return fmt.Errorf("アセットのパスが不正です: %q", p)
	}
	if _, err := fs.Stat(l.fsys, p); err != nil {
		return fmt.Errorf("アセット %s が見つかりません: %w", p, err)
	}
	return nil
}

var (
	_ ImageSource = (*ResourceLoader)(nil)
	_ core.Image  = (*ebiten.Image)(nil)
)
