package factories

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
	"github.com/openmuseum/collections-import/internal/media"
)

// MediaStorer materialises one derivative file for a multimedia record.
// Implemented by media.Helper; faked in tests.
type MediaStorer interface {
	Save(ctx context.Context, irn int64, format media.Format, resize *media.ResizeSpec, derivative string) (bool, error)
}

// Image derivative specifications. The thumbnail is a square crop used on
// search tiles; medium and large keep aspect ratio.
var (
	thumbnailResize = media.ResizeSpec{Width: 365, Height: 365, Mode: media.ResizeModeCrop, Quality: 65}
	mediumResize    = media.ResizeSpec{Width: 800, Height: 800, Mode: media.ResizeModeFit, Quality: 75}
	largeResize     = media.ResizeSpec{Width: 1600, Height: 1600, Mode: media.ResizeModeFit, Quality: 75}
)

// MediaFactory builds media entities from multimedia sub-records, writing
// derivative files as a side effect.
type MediaFactory struct {
	storer MediaStorer
}

func NewMediaFactory(storer MediaStorer) *MediaFactory {
	return &MediaFactory{storer: storer}
}

// Make builds one media entity. Returns nil when the record fails the publish
// or dataset gating, or when its known derivative cannot be materialised yet.
// Only an unexpected storage failure is an error.
func (f *MediaFactory) Make(ctx context.Context, rec emu.Record) (*entities.Media, error) {
	if rec == nil || !isPublished(rec) ||
		!anyEquals(rec.GetEncodedStrings("MdaDataSets_tab"), config.ImuMultimediaQueryString) {
		return nil, nil
	}

	irn := rec.Irn()
	if irn == 0 {
		return nil, nil
	}

	dateModified, err := parseDateModified(rec)
	if err != nil {
		return nil, err
	}

	m := entities.Media{
		Irn:             irn,
		DateModified:    dateModified,
		Caption:         makeCaption(rec),
		AlternativeText: rec.GetEncodedString("DetAlternateText"),
		Creators:        rec.GetEncodedStrings("RigCreator_tab"),
		Sources:         rec.GetEncodedStrings("RigSource_tab"),
		Credit:          rec.GetEncodedString("RigAcknowledgementCredit"),
		RightsStatement: rec.GetEncodedString("RigCopyrightStatement"),
		RightsStatus:    rec.GetEncodedString("RigCopyrightStatus"),
		Licence:         rec.GetEncodedString("RigLicence"),
		LicenceDetails:  rec.GetEncodedString("RigLicenceDetails"),
	}

	mimeType := rec.GetEncodedString("MulMimeType")
	identifier := rec.GetEncodedString("MulIdentifier")

	// Video is flagged by repository membership, not mime type, and points at
	// an external hosting uri. No file is fetched.
	if anyEquals(rec.GetEncodedStrings("ChaRepository_tab"), config.ImuVideoQueryString) {
		m.Kind = entities.MediaKindVideo
		m.Uri = identifier
		return &m, nil
	}

	switch strings.ToLower(mimeType) {
	case "image":
		return f.makeImage(ctx, m)
	case "application":
		return f.makeFile(ctx, m, entities.MediaKindFile, identifier)
	case "audio":
		return f.makeFile(ctx, m, entities.MediaKindAudio, identifier)
	}

	return nil, nil
}

// MakeAll builds media entities for every qualifying sub-record, preserving
// source order.
func (f *MediaFactory) MakeAll(ctx context.Context, recs []emu.Record) ([]entities.Media, error) {
	medias := make([]entities.Media, 0, len(recs))
	for _, rec := range recs {
		m, err := f.Make(ctx, rec)
		if err != nil {
			return nil, err
		}
		if m != nil {
			medias = append(medias, *m)
		}
	}
	return medias, nil
}

// MakeAuthorThumbnail materialises just the square thumbnail for an author
// portrait. Returns nil when gating fails or the resolution is missing.
func (f *MediaFactory) MakeAuthorThumbnail(ctx context.Context, rec emu.Record) (*entities.Media, error) {
	if rec == nil || !isPublished(rec) ||
		!anyEquals(rec.GetEncodedStrings("MdaDataSets_tab"), config.ImuMultimediaQueryString) ||
		!strings.EqualFold(rec.GetEncodedString("MulMimeType"), "image") {
		return nil, nil
	}

	irn := rec.Irn()
	if irn == 0 {
		return nil, nil
	}

	dateModified, err := parseDateModified(rec)
	if err != nil {
		return nil, err
	}

	thumb := thumbnailResize
	ok, err := f.storer.Save(ctx, irn, media.FormatJpg, &thumb, "thumb")
	if err != nil || !ok {
		return nil, err
	}

	return &entities.Media{
		Irn:             irn,
		Kind:            entities.MediaKindImage,
		DateModified:    dateModified,
		Caption:         makeCaption(rec),
		AlternativeText: rec.GetEncodedString("DetAlternateText"),
		Thumbnail: &entities.MediaFile{
			Uri:    media.URLPath(irn, media.FormatJpg, "thumb"),
			Width:  thumb.Width,
			Height: thumb.Height,
		},
	}, nil
}

func (f *MediaFactory) makeImage(ctx context.Context, m entities.Media) (*entities.Media, error) {
	m.Kind = entities.MediaKindImage

	derivatives := []struct {
		label string
		spec  media.ResizeSpec
		file  **entities.MediaFile
	}{
		{"thumb", thumbnailResize, &m.Thumbnail},
		{"medium", mediumResize, &m.Medium},
		{"large", largeResize, &m.Large},
	}

	for _, d := range derivatives {
		spec := d.spec
		ok, err := f.storer.Save(ctx, m.Irn, media.FormatJpg, &spec, d.label)
		if err != nil {
			return nil, fmt.Errorf("make image media %d: %w", m.Irn, err)
		}
		if !ok {
			// Resolution missing at the source. The whole image is skipped so
			// a later import can attach it complete.
			return nil, nil
		}
		*d.file = &entities.MediaFile{
			Uri:    media.URLPath(m.Irn, media.FormatJpg, d.label),
			Width:  spec.Width,
			Height: spec.Height,
		}
	}

	return &m, nil
}

func (f *MediaFactory) makeFile(ctx context.Context, m entities.Media, kind entities.MediaKind, identifier string) (*entities.Media, error) {
	format := formatFromIdentifier(identifier)
	if format == "" {
		return nil, nil
	}

	ok, err := f.storer.Save(ctx, m.Irn, format, nil, "")
	if err != nil {
		return nil, fmt.Errorf("make file media %d: %w", m.Irn, err)
	}
	if !ok {
		return nil, nil
	}

	m.Kind = kind
	m.Uri = media.URLPath(m.Irn, format, "")
	return &m, nil
}

// makeCaption prefers the curated caption over the raw title.
func makeCaption(rec emu.Record) string {
	for _, metadata := range rec.GetMaps("metadata") {
		if metadata == nil {
			continue
		}
		if strings.EqualFold(metadata.GetEncodedString("MdaElement_tab"), "dcTitle") &&
			metadata.GetEncodedString("MdaQualifier_tab") == "Caption.COL" {
			return metadata.GetEncodedString("MdaFreeText_tab")
		}
	}
	return rec.GetEncodedString("MulTitle")
}

func formatFromIdentifier(identifier string) media.Format {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(identifier), "."))
	if ext == "" {
		return ""
	}
	return media.Format(ext)
}
