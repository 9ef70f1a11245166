package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/decker502/farmshop/internal/pcm"
	"github.com/decker502/farmshop/pkg/embedded"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching for images, sounds and font faces, all read
// from the embedded file system.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Call it from the game loop only.
// Dialogue scripts, which are loaded in the background, go through AssetServer.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	img, err := rm.LoadImageByID("IMAGE_TILE_DIRT")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path or ID -> Image
	soundCache    map[string]*audio.Player    // ID -> Player
	fontFaceCache map[string]*text.GoTextFace // "path:size" -> face
	fontSources   map[string]*text.GoTextFaceSource
	audioContext  *audio.Context // may be nil: sounds are then skipped

	config    *ResourceConfig
	images    map[string]ImageResource
	sounds    map[string]SoundResource
	fonts     map[string]FontResource
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil (headless tests, muted builds).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string]*audio.Player),
		fontFaceCache: make(map[string]*text.GoTextFace),
		fontSources:   make(map[string]*text.GoTextFaceSource),
		audioContext:  audioContext,
		images:        make(map[string]ImageResource),
		sounds:        make(map[string]SoundResource),
		fonts:         make(map[string]FontResource),
	}
}

// LoadImage loads an image from the embedded file system and caches it.
// Supported formats: PNG, JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	if err := rm.buildResourceMap(); err != nil {
		rm.config = nil
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}
	return nil
}

// buildResourceMap indexes every resource by ID and rejects duplicate IDs.
func (rm *ResourceManager) buildResourceMap() error {
	rm.images = make(map[string]ImageResource)
	rm.sounds = make(map[string]SoundResource)
	rm.fonts = make(map[string]FontResource)
	seen := make(map[string]string)

	claim := func(id, group string) error {
		if id == "" {
			return fmt.Errorf("group %s: resource without id", group)
		}
		if other, dup := seen[id]; dup {
			return fmt.Errorf("resource ID %s defined in both %s and %s", id, other, group)
		}
		seen[id] = group
		return nil
	}

	for name, group := range rm.config.Groups {
		for _, img := range group.Images {
			if err := claim(img.ID, name); err != nil {
				return err
			}
			if img.Path == "" && img.Color == "" {
				return fmt.Errorf("image %s: either path or color is required", img.ID)
			}
			rm.images[img.ID] = img
		}
		for _, snd := range group.Sounds {
			if err := claim(snd.ID, name); err != nil {
				return err
			}
			if snd.Path == "" && snd.Tone == nil {
				return fmt.Errorf("sound %s: either path or tone is required", snd.ID)
			}
			rm.sounds[snd.ID] = snd
		}
		for _, font := range group.Fonts {
			if err := claim(font.ID, name); err != nil {
				return err
			}
			rm.fonts[font.ID] = font
		}
	}
	return nil
}

// HasResource reports whether an ID is defined in the loaded configuration.
func (rm *ResourceManager) HasResource(resourceID string) bool {
	if _, ok := rm.images[resourceID]; ok {
		return true
	}
	if _, ok := rm.sounds[resourceID]; ok {
		return true
	}
	_, ok := rm.fonts[resourceID]
	return ok
}

// LoadImageByID loads an image resource using its resource ID.
// A missing file falls back to the configured placeholder colour.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	if cached, ok := rm.imageCache[resourceID]; ok {
		return cached, nil
	}

	res, exists := rm.images[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	if res.Path != "" {
		fullPath := buildFullPath(rm.config.BasePath, res.Path)
		if filepath.Ext(fullPath) == "" {
			fullPath += ".png"
		}
		img, err := rm.LoadImage(fullPath)
		if err == nil {
			rm.imageCache[resourceID] = img
			return img, nil
		}
		if res.Color == "" {
			return nil, err
		}
		log.Printf("[ResourceManager] %s: %v, using placeholder", resourceID, err)
	}

	img, err := newPlaceholderImage(res)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", resourceID, err)
	}
	rm.imageCache[resourceID] = img
	return img, nil
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	return rm.imageCache[resourceID]
}

func newPlaceholderImage(res ImageResource) (*ebiten.Image, error) {
	c, err := parseHexColor(res.Color)
	if err != nil {
		return nil, err
	}
	w, h := res.Width, res.Height
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = 16
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img, nil
}

// LoadSoundByID returns a one-shot player for a sound resource.
// Returns (nil, nil) when no audio context is available.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, nil
	}
	if cached, ok := rm.soundCache[resourceID]; ok {
		return cached, nil
	}

	res, exists := rm.sounds[resourceID]
	if !exists {
		return nil, fmt.Errorf("sound ID not found: %s", resourceID)
	}

	var player *audio.Player
	if res.Path != "" {
		p, err := rm.loadSoundFile(buildFullPath(rm.config.BasePath, res.Path))
		if err != nil {
			return nil, err
		}
		player = p
	} else {
		pcm := synthesizeTone(rm.audioContext.SampleRate(), res.Tone.Frequency, res.Tone.Duration)
		player = rm.audioContext.NewPlayerFromBytes(pcm)
	}

	rm.soundCache[resourceID] = player
	return player, nil
}

// loadSoundFile decodes an embedded .ogg, .mp3 or .au file.
func (rm *ResourceManager) loadSoundFile(path string) (*audio.Player, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var stream io.ReadSeeker

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound %s: %w", path, err)
		}
		stream = decoded
	case ".au":
		decoded, rate, err := pcm.DecodeAU(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU sound %s: %w", path, err)
		}
		stream = bytes.NewReader(decoded)
		if target := rm.audioContext.SampleRate(); rate != target {
			stream = audio.Resample(stream, int64(len(decoded)), rate, target)
		}
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .au)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// synthesizeTone renders a sine tone as 16-bit little-endian stereo PCM
// with a linear fade-out to avoid clicks.
func synthesizeTone(sampleRate int, frequency, duration float64) []byte {
	n := int(float64(sampleRate) * duration)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		envelope := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)) * envelope * 0.3
		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// An empty path selects the bundled Go Regular font.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.fontSource(path)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

func (rm *ResourceManager) fontSource(path string) (*text.GoTextFaceSource, error) {
	if src, ok := rm.fontSources[path]; ok {
		return src, nil
	}

	fontData := goregular.TTF
	if path != "" {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}
	rm.fontSources[path] = source
	return source, nil
}

// LoadFontByID loads a font face defined in the resource configuration.
func (rm *ResourceManager) LoadFontByID(resourceID string) (*text.GoTextFace, error) {
	res, ok := rm.fonts[resourceID]
	if !ok {
		return nil, fmt.Errorf("font ID not found: %s", resourceID)
	}
	path := ""
	if res.Path != "" {
		path = buildFullPath(rm.config.BasePath, res.Path)
	}
	size := res.Size
	if size <= 0 {
		size = 12
	}
	return rm.LoadFont(path, size)
}

// DefaultFont returns the bundled Go Regular face at the given size.
// It never fails: the font is compiled into the binary.
func (rm *ResourceManager) DefaultFont(size float64) *text.GoTextFace {
	face, err := rm.LoadFont("", size)
	if err != nil {
		log.Printf("[ResourceManager] default font unavailable: %v", err)
		return nil
	}
	return face
}

// LoadResourceGroup loads all resources in a specified group.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}
	for _, font := range group.Fonts {
		if _, err := rm.LoadFontByID(font.ID); err != nil {
			return fmt.Errorf("failed to load font %s in group %s: %w", font.ID, groupName, err)
		}
	}
	for _, snd := range group.Sounds {
		if _, err := rm.LoadSoundByID(snd.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", snd.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded resource group %s (%d images, %d fonts, %d sounds)",
		groupName, len(group.Images), len(group.Fonts), len(group.Sounds))
	return nil
}
