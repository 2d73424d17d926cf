package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/milk9111/groundskeeper/prefabs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudToolset  = "tools.yaml"
	hotbarIcon  = 32
	hotbarFrame = 2
)

// HUD is the toolbar along the bottom of the screen: frame rate, score and
// one hotbar slot per tool. A slot's frame is the ready color while the tool
// can fire and the cooldown color while it recharges.
type HUD struct {
	UI *ebitenui.UI

	world  *ecs.World
	player ecs.Entity

	fps   *widget.Text
	score *widget.Text

	slots    []hotbarSlot
	group    *widget.RadioGroup
	selected int

	ready   *imageui.NineSlice
	cooling *imageui.NineSlice
}

type hotbarSlot struct {
	frame  *widget.Container
	button *widget.Button
}

func NewHUD(w *ecs.World) (*HUD, error) {
	toolset, err := prefabs.LoadToolsetSpec(hudToolset)
	if err != nil {
		return nil, err
	}

	h := &HUD{
		world:    w,
		selected: -1,
		ready:    imageui.NewNineSliceColor(toolset.ReadyColor.Or(common.ReadyColor)),
		cooling:  imageui.NewNineSliceColor(toolset.CooldownColor.Or(common.CooldownColor)),
	}
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		h.player = player
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	h.fps = widget.NewText(
		widget.TextOpts.Text("FPS: 0", &face, common.TextColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	h.score = widget.NewText(
		widget.TextOpts.Text("Score: 0", &face, common.TextColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	toolbar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(common.ToolbarColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: 8, Right: 8, Top: 2, Bottom: 2}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, common.ToolbarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	toolbar.AddChild(h.fps)
	toolbar.AddChild(h.score)
	toolbar.AddChild(h.buildHotbar(face))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(toolbar)

	h.UI = &ebitenui.UI{Container: root}
	h.Refresh(w)
	return h, nil
}

func (h *HUD) buildHotbar(face ebtext.Face) *widget.Container {
	hotbar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)

	belt := h.toolbelt()
	if belt == nil {
		return hotbar
	}

	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(common.ToolbarColor),
		Hover:   imageui.NewNineSliceColor(common.ToolbarColor),
		Pressed: imageui.NewNineSliceColor(common.ReadyColor),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: common.TextColor, Pressed: common.ToolbarColor}

	elements := make([]widget.RadioGroupElement, 0, len(belt.Tools))
	for i := range belt.Tools {
		tool := &belt.Tools[i]
		idx := i

		frame := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(h.ready),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: hotbarFrame, Bottom: hotbarFrame, Left: hotbarFrame, Right: hotbarFrame}),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		if tool.Icon != nil {
			frame.AddChild(widget.NewGraphic(
				widget.GraphicOpts.Image(tool.Icon),
				widget.GraphicOpts.WidgetOpts(
					widget.WidgetOpts.MinSize(hotbarIcon, hotbarIcon),
					widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
						h.selectSlot(idx)
					}),
				),
			))
		}

		btn := widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(fmt.Sprintf("%d", i+1), &face, btnTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(20, hotbarIcon),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)

		hotbar.AddChild(btn)
		hotbar.AddChild(frame)
		h.slots = append(h.slots, hotbarSlot{frame: frame, button: btn})
		elements = append(elements, btn)
	}

	h.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, slot := range h.slots {
				if args.Active == slot.button {
					h.selectTool(idx)
					return
				}
			}
		}),
	)
	return hotbar
}

// Refresh copies the frame rate, score and tool state into the widgets.
func (h *HUD) Refresh(w *ecs.World) {
	if h == nil {
		return
	}
	h.world = w

	h.fps.Label = fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())

	points := 0
	if score, ok := ecs.Get(w, h.player, component.ScoreComponent.Kind()); ok {
		points = score.Points
	}
	h.score.Label = fmt.Sprintf("Score: %d", points)

	belt := h.toolbelt()
	if belt == nil {
		return
	}
	for i, slot := range h.slots {
		if i >= len(belt.Tools) {
			break
		}
		slot.frame.SetBackgroundImage(h.frameImage(&belt.Tools[i]))
	}
	if belt.Selected != h.selected {
		h.selectSlot(belt.Selected)
	}
}

// frameImage is the ready border while the tool can fire and the cooldown
// border while it recharges.
func (h *HUD) frameImage(tool *component.Tool) *imageui.NineSlice {
	if tool == nil || tool.Ready() {
		return h.ready
	}
	return h.cooling
}

// selectSlot moves the radio group, which in turn selects the tool.
func (h *HUD) selectSlot(i int) {
	if h.group == nil || i < 0 || i >= len(h.slots) {
		return
	}
	h.selected = i
	h.group.SetActive(h.slots[i].button)
}

func (h *HUD) selectTool(i int) {
	h.selected = i
	if belt := h.toolbelt(); belt != nil {
		belt.Select(i)
	}
}

func (h *HUD) toolbelt() *component.Toolbelt {
	belt, ok := ecs.Get(h.world, h.player, component.ToolbeltComponent.Kind())
	if !ok {
		return nil
	}
	return belt
}
